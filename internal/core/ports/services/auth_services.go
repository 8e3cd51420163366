package services

import "context"

// AuthSvcFacade authenticates operators and issues access tokens.
type AuthSvcFacade interface {
	// Login verifies the credentials and returns a signed JWT whose subject is
	// the user's ID.
	Login(ctx context.Context, username, password string) (string, error)
}
