package activateuser

import (
	"context"
	"errors"
	c "shopapi/internal/core/domain/common"
	e "shopapi/internal/core/domain/errors"
	"shopapi/internal/core/domain/logging"
	uow "shopapi/internal/core/domain/unit_of_work"
	"shopapi/internal/core/domain/user"
	"shopapi/internal/core/services"
	"time"
)

type Input struct {
	Email c.Email
	Code  string
}

type Result struct {
	User user.User
}

type service struct {
	log logging.Logger
	uow uow.UnitOfWork
	now func() time.Time
}

func New(
	log logging.Logger,
	uow uow.UnitOfWork,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if uow == nil {
		panic(e.NewNilArgumentError("uow"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log: log,
		uow: uow,
		now: now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	u, err := uow.Users().GetByEmail(ctx, input.Email)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for activation.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	code, err := uow.VerificationCodes().GetByUserID(ctx, u.ID)
	if errors.Is(err, user.ErrVerificationCodeNotFound) {
		return result, user.ErrInvalidVerificationCode
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get verification code.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	// Exact string match, only the most recently issued code is valid.
	if code.Code != input.Code {
		return result, user.ErrInvalidVerificationCode
	}

	u, err = uow.Users().Activate(ctx, u.ID, s.now())
	if err != nil {
		s.log.Error(
			ctx,
			"Could not activate user.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	// The code is consumed, it must not verify twice.
	if err := uow.VerificationCodes().Delete(ctx, u.ID); err != nil {
		s.log.Error(
			ctx,
			"Could not delete consumed verification code.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err = uow.Commit(ctx); err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User successfully activated.", logging.Entry("userId", u.ID))
	return Result{User: u}, nil
}
