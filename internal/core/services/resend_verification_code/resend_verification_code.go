package resendverificationcode

import (
	"context"
	"errors"
	c "shopapi/internal/core/domain/common"
	e "shopapi/internal/core/domain/errors"
	"shopapi/internal/core/domain/logging"
	"shopapi/internal/core/domain/user"
	"shopapi/internal/core/services"
	"time"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "resend-verification-code::" + string(i.Email)
}

type Result struct {
	User user.User
	Code string
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	codeRepository user.VerificationCodeRepository
	codeGenerator  user.VerificationCodeGenerator
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	codeRepository user.VerificationCodeRepository,
	codeGenerator user.VerificationCodeGenerator,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if codeRepository == nil {
		panic(e.NewNilArgumentError("codeRepository"))
	}
	if codeGenerator == nil {
		panic(e.NewNilArgumentError("codeGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		codeRepository: codeRepository,
		codeGenerator:  codeGenerator,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User not found for verification code resend.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for verification code resend.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	now := s.now()
	code, err := s.codeRepository.ReplaceIfOlder(
		ctx,
		user.CreateVerificationCodeInput{
			UserID:    u.ID,
			Code:      s.codeGenerator.GenerateVerificationCode(),
			CreatedAt: now,
		},
		user.ResendCooldown,
	)
	var errIssuedRecently *user.CodeIssuedRecentlyError
	if errors.As(err, &errIssuedRecently) {
		waitSeconds := int64(user.ResendCooldown.Seconds()) - int64(now.Sub(errIssuedRecently.IssuedAt).Seconds())
		if waitSeconds < 0 {
			waitSeconds = 0
		}
		s.log.Info(
			ctx,
			"Verification code resend throttled.",
			logging.Entry("userId", u.ID),
			logging.Entry("waitSeconds", waitSeconds),
		)
		return result, &user.VerificationCodeThrottledError{WaitSeconds: waitSeconds}
	}
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not replace verification code.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "New verification code has been issued.", logging.Entry("userId", u.ID))
	return Result{User: u, Code: code.Code}, nil
}
