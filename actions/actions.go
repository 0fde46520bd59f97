// Package actions is the use-case layer: one method per operation of the
// service. Each method validates the request shape before any store access,
// resolves the session where one is required, performs the store reads and
// writes, and returns a uniform result envelope. Expected business outcomes
// come back as failed envelopes; only validation errors, unauthenticated
// requests and store faults surface as errors.
package actions

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"messenger/errors"
	"messenger/store"
)

// Actions composes the store into the operations of the service.
type Actions struct {
	store      *store.Store
	log        zerolog.Logger
	validate   *validator.Validate
	bcryptCost int
}

// New builds the action set around an injected store handle.
func New(st *store.Store, log zerolog.Logger, bcryptCost int) *Actions {
	return &Actions{
		store:      st,
		log:        log,
		validate:   validator.New(),
		bcryptCost: bcryptCost,
	}
}

// check validates the request shape; nothing past it runs on a bad request.
func (a *Actions) check(req interface{}) error {
	err := a.validate.Struct(req)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		return &errors.Validation{Field: verrs[0].StructField(), Tag: verrs[0].Tag()}
	}
	return &errors.Validation{Field: "Request", Tag: "invalid"}
}

// resolve maps a session token to its username or fails unauthenticated.
func (a *Actions) resolve(ctx context.Context, sessionID string) (string, error) {
	username, err := a.store.ResolveSession(ctx, sessionID)
	if err == store.ErrNoSession {
		return "", errors.ErrUnauthenticated
	}
	if err != nil {
		return "", errors.NewFault("resolve_session", err)
	}
	return username, nil
}
