package updateuser

import (
	"context"
	c "shopapi/internal/core/domain/common"
	e "shopapi/internal/core/domain/errors"
	"shopapi/internal/core/domain/logging"
	"shopapi/internal/core/domain/user"
	"shopapi/internal/core/services"
	"shopapi/internal/core/services/auth"
)

type Input struct {
	UserID              user.ID
	DoPhoneNumberUpdate bool
	PhoneNumber         c.Optional[user.PhoneNumber]
	DoFirstNameUpdate   bool
	FirstName           c.Optional[string]
	DoLastNameUpdate    bool
	LastName            c.Optional[string]
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
	updatedUser, err := s.userRepository.Update(
		ctx,
		user.UpdateUserInput{
			ID:                  input.UserID,
			DoPhoneNumberUpdate: input.DoPhoneNumberUpdate,
			PhoneNumber:         input.PhoneNumber,
			DoFirstNameUpdate:   input.DoFirstNameUpdate,
			FirstName:           input.FirstName,
			DoLastNameUpdate:    input.DoLastNameUpdate,
			LastName:            input.LastName,
		},
	)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"User successfully updated.",
		logging.Entry("userID", updatedUser.ID),
	)
	result.User = updatedUser
	return result, nil
}
