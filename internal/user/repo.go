package user

import (
	"context"

	"github.com/mind-engage/mindengage-oems/internal/exam"
)

// Store holds accounts and each student's result history. Both lists come
// back in insertion order.
type Store interface {
	PutUser(ctx context.Context, a Account) error
	GetUser(ctx context.Context, id string) (Account, error)
	ListUsers(ctx context.Context) ([]Account, error)

	AppendResult(ctx context.Context, r exam.Result) error
	ListResults(ctx context.Context, studentID string) ([]exam.Result, error)
}
