package activateuser

import (
	"context"
	"errors"
	c "shopapi/internal/core/domain/common"
	"shopapi/internal/core/domain/logging"
	uow "shopapi/internal/core/domain/unit_of_work"
	"shopapi/internal/core/domain/user"
	"shopapi/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL = "ana@test.test"
	CODE  = "482913"
)

var NOW time.Time = time.Now().UTC().Truncate(time.Second)

type testSuite struct {
	suite.Suite
	Logger  *logging.FakeLogger
	Uow     *uow.FakeUnitOfWork
	Service services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Uow = uow.NewFakeUnitOfWork()
	suite.Service = New(
		suite.Logger,
		suite.Uow,
		func() time.Time { return NOW },
	)
}

func TestActivateUserService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	u := s.createUser()
	s.createCode(u.ID, CODE)

	result, err := s.Service.Run(context.Background(), Input{Email: u.Email, Code: CODE})
	s.Nil(err)
	s.True(result.User.IsActive())
	s.Equal(c.NewOptional(NOW, true), result.User.ActivatedAt)
	s.True(s.Uow.Context.WasCommitCalled)
}

func (s *testSuite) TestUserDoesNotExist() {
	_, err := s.Service.Run(context.Background(), Input{Email: c.Email(EMAIL), Code: CODE})
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) TestWrongCode() {
	u := s.createUser()
	s.createCode(u.ID, CODE)

	_, err := s.Service.Run(context.Background(), Input{Email: u.Email, Code: "000000"})
	s.True(errors.Is(err, user.ErrInvalidVerificationCode))

	stored, getErr := s.Uow.Context.UserRepository.GetByID(context.Background(), u.ID)
	s.Nil(getErr)
	s.False(stored.IsActive())
}

func (s *testSuite) TestNoCodeIssued() {
	u := s.createUser()

	_, err := s.Service.Run(context.Background(), Input{Email: u.Email, Code: CODE})
	s.True(errors.Is(err, user.ErrInvalidVerificationCode))
}

func (s *testSuite) TestCodeCannotBeReused() {
	u := s.createUser()
	s.createCode(u.ID, CODE)

	_, err := s.Service.Run(context.Background(), Input{Email: u.Email, Code: CODE})
	s.Nil(err)

	_, err = s.Service.Run(context.Background(), Input{Email: u.Email, Code: CODE})
	s.True(errors.Is(err, user.ErrInvalidVerificationCode))
}

func (s *testSuite) TestOnlyLatestCodeIsValid() {
	u := s.createUser()
	s.createCode(u.ID, "111111")
	s.createCode(u.ID, CODE)

	_, err := s.Service.Run(context.Background(), Input{Email: u.Email, Code: "111111"})
	s.True(errors.Is(err, user.ErrInvalidVerificationCode))

	result, err := s.Service.Run(context.Background(), Input{Email: u.Email, Code: CODE})
	s.Nil(err)
	s.True(result.User.IsActive())
}

func (s *testSuite) createUser() user.User {
	u, err := s.Uow.Context.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(EMAIL),
		Username:     user.Username("ana"),
		PasswordHash: user.PasswordHash("test-hash"),
		CreatedAt:    NOW.Add(-time.Hour),
	})
	s.Nil(err)
	return u
}

func (s *testSuite) createCode(userID user.ID, code string) {
	_, err := s.Uow.Context.VerificationCodeRepository.Replace(context.Background(), user.CreateVerificationCodeInput{
		UserID:    userID,
		Code:      code,
		CreatedAt: NOW.Add(-time.Minute),
	})
	s.Nil(err)
}
