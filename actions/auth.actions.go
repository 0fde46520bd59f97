package actions

import (
	"context"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"messenger/errors"
	"messenger/schemas"
	"messenger/store"
)

var validUsername = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// CreateAccount registers a new user. A taken username is an expected
// outcome, not an error.
func (a *Actions) CreateAccount(ctx context.Context, req schemas.SignupSchema) (schemas.Result, error) {
	a.log.Info().Str("username", req.Username).Msg("attempt to create user")

	if err := a.check(req); err != nil {
		return schemas.Result{}, err
	}
	if !validUsername.MatchString(req.Username) {
		return schemas.Result{}, &errors.Validation{Field: "Username", Tag: "regex"}
	}

	exists, err := a.store.UserExists(ctx, req.Username)
	if err != nil {
		return schemas.Result{}, errors.NewFault("user_exists", err)
	}
	if exists {
		return schemas.Failed("user with username (" + req.Username + ") already exists"), nil
	}

	passhash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		return schemas.Result{}, errors.NewFault("hash_password", err)
	}

	err = a.store.SetProfile(ctx, schemas.Profile{
		Username: req.Username,
		Passhash: string(passhash),
		Extra:    req.Extra,
	})
	if err != nil {
		return schemas.Result{}, errors.NewFault("set_profile", err)
	}

	return schemas.Succeeded("successfully created user with username (" + req.Username + ")"), nil
}

// Authenticate verifies credentials and mints a session token. An unknown
// user and a wrong password both come back as failed envelopes with distinct
// messages; a failed attempt is recorded only when the account exists.
func (a *Actions) Authenticate(ctx context.Context, req schemas.SigninSchema) (schemas.Result, error) {
	a.log.Info().Str("username", req.Username).Msg("attempt to authenticate user")

	if err := a.check(req); err != nil {
		return schemas.Result{}, err
	}

	profile, err := a.store.GetProfile(ctx, req.Username)
	if err == store.ErrNoUser {
		return schemas.Failed("user with username (" + req.Username + ") does not exist"), nil
	}
	if err != nil {
		return schemas.Result{}, errors.NewFault("get_profile", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.Passhash), []byte(req.Password)) != nil {
		if err := a.store.RecordAttempt(ctx, req.Username, schemas.AttemptFailed); err != nil {
			return schemas.Result{}, errors.NewFault("record_attempt", err)
		}
		a.log.Info().Str("username", req.Username).Msg("signin failed: wrong password")
		return schemas.Failed("username (" + req.Username + ") and/or password are incorrect"), nil
	}

	sessionID, err := a.store.CreateSession(ctx, req.Username)
	if err != nil {
		return schemas.Result{}, errors.NewFault("create_session", err)
	}
	if err := a.store.RecordAttempt(ctx, req.Username, schemas.AttemptSucceeded); err != nil {
		return schemas.Result{}, errors.NewFault("record_attempt", err)
	}

	a.log.Info().Str("username", req.Username).Msg("signin succeeded")
	return schemas.SucceededData("successfully signed in with username ("+req.Username+")", sessionID), nil
}

// Deauthenticate invalidates a session. The session must still resolve, so a
// second sign-out of the same token fails unauthenticated.
func (a *Actions) Deauthenticate(ctx context.Context, req schemas.SignoutSchema) (schemas.Result, error) {
	a.log.Info().Msg("attempt to deauthenticate user via session id")

	if err := a.check(req); err != nil {
		return schemas.Result{}, err
	}

	username, err := a.resolve(ctx, req.SessionID)
	if err != nil {
		return schemas.Result{}, err
	}

	if err := a.store.DeleteSession(ctx, req.SessionID); err != nil {
		return schemas.Result{}, errors.NewFault("delete_session", err)
	}

	return schemas.Succeeded("successfully signed out user with username (" + username + ")"), nil
}

// GetActivity returns the most recent signin attempts of the session's user.
func (a *Actions) GetActivity(ctx context.Context, req schemas.ActivitySchema) (schemas.Result, error) {
	a.log.Info().Msg("attempt to get sign in activity")

	if err := a.check(req); err != nil {
		return schemas.Result{}, err
	}

	username, err := a.resolve(ctx, req.SessionID)
	if err != nil {
		return schemas.Result{}, err
	}

	attempts, err := a.store.ActivityRange(ctx, username, 0, req.NoActivity)
	if err != nil {
		return schemas.Result{}, errors.NewFault("activity_range", err)
	}

	return schemas.SucceededData("successfully got activity log of user with username ("+username+")", attempts), nil
}

// GetProfile returns the session's own profile with the passhash redacted.
func (a *Actions) GetProfile(ctx context.Context, sessionID string) (schemas.Result, error) {
	a.log.Info().Msg("attempt to get own profile")

	if sessionID == "" {
		return schemas.Result{}, &errors.Validation{Field: "SessionID", Tag: "required"}
	}

	username, err := a.resolve(ctx, sessionID)
	if err != nil {
		return schemas.Result{}, err
	}

	// A resolvable session for a missing profile is corrupt state.
	profile, err := a.store.GetProfile(ctx, username)
	if err != nil {
		return schemas.Result{}, errors.NewFault("get_profile", err)
	}

	return schemas.SucceededData("successfully got profile of user with username ("+username+")", profile.Redacted()), nil
}
