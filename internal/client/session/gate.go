// Package session guards the protected views of the client. Every protected
// screen asks the gate for the current user before rendering; without one the
// caller falls back to the login screen.
package session

import (
	"context"
	"errors"

	"github.com/viremo/viremo-be/internal/models"
)

// ErrNoSession means the user must go through the login screen.
var ErrNoSession = errors.New("no active session")

// UserSource answers "who is the current user?". The real implementation is
// the API client's Me call.
type UserSource interface {
	Me(ctx context.Context) (models.User, error)
}

// Gate makes exactly one session query per check. A query failure of any kind
// is treated identically to "no session"; there are no retries.
type Gate struct {
	src UserSource
}

// New creates a Gate over the given user source.
func New(src UserSource) *Gate {
	return &Gate{src: src}
}

// Ensure returns the current user, or ErrNoSession when there is none or the
// query failed.
func (g *Gate) Ensure(ctx context.Context) (models.User, error) {
	user, err := g.src.Me(ctx)
	if err != nil {
		return models.User{}, ErrNoSession
	}
	return user, nil
}
