package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

type Checker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
}

// LoginTestChecker is used in tests in place of the redis backed checker.
type LoginTestChecker struct {
	LoggedSessions map[string]bool
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]bool{},
	}
}

func (tc *LoginTestChecker) IsLogged(_ context.Context, token string) (bool, error) {
	logged, ok := tc.LoggedSessions[token]
	return ok && logged, nil
}
