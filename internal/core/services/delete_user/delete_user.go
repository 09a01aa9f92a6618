package deleteuser

import (
	"context"
	e "shopapi/internal/core/domain/errors"
	"shopapi/internal/core/domain/logging"
	"shopapi/internal/core/domain/user"
	"shopapi/internal/core/services"
	"shopapi/internal/core/services/auth"
)

type Input struct {
	UserID user.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := s.userRepository.Delete(ctx, input.UserID); err != nil {
		s.log.Error(
			ctx,
			"Could not delete user.",
			logging.Entry("userId", input.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User account has been deleted.", logging.Entry("userId", input.UserID))
	return result, nil
}
