package db

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

const (
	DefaultSQLiteDSN   = ":memory:"
	DefaultPostgresDSN = "postgres://localhost:5432/oems?sslmode=disable"
)

// Open opens a database and recreates the schema. Nothing survives a
// restart: tables are dropped on every Open, whatever the driver or DSN.
func Open(ctx context.Context, driver Driver, dsn string) (*sqlx.DB, error) {
	var drvName, schema string
	switch driver {
	case DriverSQLite, "":
		drvName, schema = "sqlite", schemaSQLite // modernc driver
		if dsn == "" {
			dsn = DefaultSQLiteDSN
		}
	case DriverPostgres:
		drvName, schema = "pgx", schemaPostgres // pgx stdlib driver
		if dsn == "" {
			dsn = DefaultPostgresDSN
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sqlx.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if drvName == "sqlite" {
		// every connection to :memory: is its own database
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return db, nil
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

DROP TABLE IF EXISTS results;
DROP TABLE IF EXISTS users;
DROP TABLE IF EXISTS exams;

CREATE TABLE exams (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  title TEXT NOT NULL,
  duration_minutes INTEGER NOT NULL,
  questions_json TEXT NOT NULL,
  created_at INTEGER NOT NULL
);

-- email is deliberately not unique: login takes the first match
CREATE TABLE users (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  role TEXT NOT NULL,
  role_id TEXT NOT NULL,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  credential TEXT NOT NULL,
  created_at INTEGER NOT NULL
);

CREATE TABLE results (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  student_id TEXT NOT NULL REFERENCES users(id),
  exam_id TEXT NOT NULL REFERENCES exams(id),
  score INTEGER NOT NULL CHECK (score >= 0),
  taken_at INTEGER NOT NULL
);
`

const schemaPostgres = `
DROP TABLE IF EXISTS results;
DROP TABLE IF EXISTS users;
DROP TABLE IF EXISTS exams;

CREATE TABLE exams (
  seq BIGSERIAL PRIMARY KEY,
  id TEXT NOT NULL UNIQUE,
  title TEXT NOT NULL,
  duration_minutes INTEGER NOT NULL,
  questions_json TEXT NOT NULL,
  created_at BIGINT NOT NULL
);

CREATE TABLE users (
  seq BIGSERIAL PRIMARY KEY,
  id TEXT NOT NULL UNIQUE,
  role TEXT NOT NULL,
  role_id TEXT NOT NULL,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  credential TEXT NOT NULL,
  created_at BIGINT NOT NULL
);

CREATE TABLE results (
  seq BIGSERIAL PRIMARY KEY,
  id TEXT NOT NULL UNIQUE,
  student_id TEXT NOT NULL REFERENCES users(id),
  exam_id TEXT NOT NULL REFERENCES exams(id),
  score INTEGER NOT NULL CHECK (score >= 0),
  taken_at BIGINT NOT NULL
);
`
