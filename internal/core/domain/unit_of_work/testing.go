package uow

import (
	"context"
	"shopapi/internal/core/domain/user"
)

type FakeUnitOfWorkContext struct {
	UserRepository             *user.FakeUserRepository
	SessionRepository          *user.FakeSessionRepository
	VerificationCodeRepository *user.FakeVerificationCodeRepository
	WasRollbackCalled          bool
	WasCommitCalled            bool
}

func NewFakeUnitOfWorkContext(
	userRepository *user.FakeUserRepository,
	sessionRepository *user.FakeSessionRepository,
	verificationCodeRepository *user.FakeVerificationCodeRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		UserRepository:             userRepository,
		SessionRepository:          sessionRepository,
		VerificationCodeRepository: verificationCodeRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) Sessions() user.SessionRepository {
	return c.SessionRepository
}

func (c *FakeUnitOfWorkContext) VerificationCodes() user.VerificationCodeRepository {
	return c.VerificationCodeRepository
}

type FakeUnitOfWork struct {
	Context *FakeUnitOfWorkContext
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	userRepository := user.NewFakeUserRepository()
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			userRepository,
			user.NewFakeSessionRepository(userRepository),
			user.NewFakeVerificationCodeRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	return u.Context, nil
}
