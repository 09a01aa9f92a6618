package getuserbyid

import (
	"context"
	"errors"
	e "shopapi/internal/core/domain/errors"
	"shopapi/internal/core/domain/logging"
	"shopapi/internal/core/domain/user"
	"shopapi/internal/core/services"
	"shopapi/internal/core/services/auth"
)

type Input struct {
	TargetUserID user.ID
	UserID       user.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	User user.User
}

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
	u, err := s.userRepository.GetByID(ctx, input.TargetUserID)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, user.ErrRequestedUserDoesNotExist
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user by ID.",
			logging.Entry("targetUserId", input.TargetUserID),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{User: u}, nil
}
