package user

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmailAlreadyExists        = errors.New("email already exists")
	ErrUsernameAlreadyExists     = errors.New("username already exists")
	ErrUserDoesNotExist          = errors.New("user does not exist")
	// ErrRequestedUserDoesNotExist reports an unknown target user on a
	// lookup by ID, as opposed to a failed authentication.
	ErrRequestedUserDoesNotExist = errors.New("requested user does not exist")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrUserIsNotActive           = errors.New("user is not active")
	ErrSessionDoesNotExist       = errors.New("session does not exist")
	ErrInvalidVerificationCode   = errors.New("invalid verification code")
	ErrVerificationCodeNotFound  = errors.New("verification code does not exist")
	ErrInvalidPasswordResetToken = errors.New("invalid password reset token")
)

// CodeIssuedRecentlyError is returned by the verification code repository
// when the cooldown guard rejects a conditional replace. IssuedAt is the
// creation time of the code that is still in effect.
type CodeIssuedRecentlyError struct {
	IssuedAt time.Time
}

func (e *CodeIssuedRecentlyError) Error() string {
	return fmt.Sprintf("verification code was issued recently at %v", e.IssuedAt)
}

// VerificationCodeThrottledError carries the number of seconds the caller
// must wait before a new verification code can be issued.
type VerificationCodeThrottledError struct {
	WaitSeconds int64
}

func (e *VerificationCodeThrottledError) Error() string {
	return fmt.Sprintf("verification code was issued recently, wait %d seconds", e.WaitSeconds)
}
