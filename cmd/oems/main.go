package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/mind-engage/mindengage-oems/internal/config"
	"github.com/mind-engage/mindengage-oems/internal/console"
	"github.com/mind-engage/mindengage-oems/internal/db"
	"github.com/mind-engage/mindengage-oems/internal/exam"
	"github.com/mind-engage/mindengage-oems/internal/user"
)

func main() {
	envFile := flag.String("env", ".env", "Path to an optional .env file")
	verbose := flag.Bool("verbose", false, "Log to stderr")
	flag.Parse()

	if err := run(*envFile, *verbose); err != nil {
		log.SetOutput(os.Stderr)
		log.Printf("oems: %v", err)
		os.Exit(1)
	}
}

// run returns nil on the Exit choice, on closed input and on interrupt.
func run(envFile string, verbose bool) error {
	log.SetOutput(os.Stderr)
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if !cfg.Verbose && !verbose {
		// keep the console transcript clean
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	examStore, userStore, closeStores, err := openStores(ctx, cfg)
	if err != nil {
		return fmt.Errorf("store open failed: %w", err)
	}
	defer closeStores()

	users := user.NewManager(userStore, user.NewHasher(cfg.PasswordHashing, cfg.BcryptCost))
	exams := exam.NewManager(examStore)

	log.Printf("starting (store=%s, db=%s, password=%s)", cfg.Store, cfg.DBDriver, cfg.PasswordHashing)
	err = console.NewSession(os.Stdin, os.Stdout, users, exams).Run(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}

func openStores(ctx context.Context, cfg config.Config) (exam.Store, user.Store, func(), error) {
	if cfg.Store != config.StoreSQL {
		return exam.NewInMemoryStore(), user.NewInMemoryStore(), func() {}, nil
	}
	octx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	dbh, err := db.Open(octx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		return nil, nil, nil, err
	}
	return exam.NewSQLStore(dbh), user.NewSQLStore(dbh), func() { _ = dbh.Close() }, nil
}
