package signupwithemail

import (
	"context"
	"errors"
	e "shopapi/internal/core/domain/errors"
	"shopapi/internal/core/domain/logging"
	"shopapi/internal/core/domain/user"
	"shopapi/internal/core/services"
)

type serviceWithVerificationCodeSending struct {
	log    logging.Logger
	sender user.VerificationCodeSender
	inner  services.Service[Input, Result]
}

func NewWithVerificationCodeSending(
	log logging.Logger,
	sender user.VerificationCodeSender,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithVerificationCodeSending{
		log:    log,
		sender: sender,
		inner:  inner,
	}
}

func (s *serviceWithVerificationCodeSending) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip sending verification code.", logging.Entry("err", err))
		return result, err
	}

	// Delivery is best effort, a dispatch failure must not fail the sign up.
	if err := s.sender.SendVerificationCode(ctx, result.User, result.Code); err != nil {
		s.log.Error(
			ctx,
			"Could not send verification code.",
			logging.Entry("userId", result.User.ID),
			logging.Entry("err", err),
		)
		return result, nil
	}

	s.log.Info(
		ctx,
		"Verification code has been sent to the user.",
		logging.Entry("userId", result.User.ID),
	)
	return result, nil
}
