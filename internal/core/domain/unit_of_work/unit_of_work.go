package uow

import (
	"context"
	"shopapi/internal/core/domain/user"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Sessions() user.SessionRepository
	VerificationCodes() user.VerificationCodeRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
