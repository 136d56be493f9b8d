package user

import (
	"log"

	"golang.org/x/crypto/bcrypt"
)

const (
	HashPlain  = "plain"
	HashBcrypt = "bcrypt"

	DefaultBcryptCost = 12
)

// PasswordHasher turns a password into the stored credential and checks a
// login attempt against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(credential, password string) bool
}

// PlainHasher stores the password as-is and compares with plain equality.
type PlainHasher struct{}

func (PlainHasher) Hash(password string) (string, error) { return password, nil }

func (PlainHasher) Compare(credential, password string) bool { return credential == password }

type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (BcryptHasher) Compare(credential, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(credential), []byte(password)) == nil
}

// NewHasher returns the hasher named by kind, falling back to PlainHasher.
func NewHasher(kind string, cost int) PasswordHasher {
	switch kind {
	case HashBcrypt:
		return BcryptHasher{Cost: cost}
	case HashPlain, "":
		return PlainHasher{}
	default:
		log.Printf("unknown password hashing %q, using %s", kind, HashPlain)
		return PlainHasher{}
	}
}
