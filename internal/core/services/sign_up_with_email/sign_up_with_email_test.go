package signupwithemail

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
	EMAIL    = "ana@test.test"
	USERNAME = "ana"
	PASSWORD = "test-password"
	CODE     = "482913"
)

var NOW time.Time = time.Now().UTC()

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
		user.NewFakePasswordHasher(),
		user.NewFakeVerificationCodeGenerator(CODE),
		func() time.Time { return NOW },
	)
}

func TestSignUpWithEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccessUserCreated() {
	result, err := s.Service.Run(context.Background(), s.input())
	s.Nil(err)

	u, err := s.Uow.Context.UserRepository.GetByEmail(context.Background(), c.Email(EMAIL))
	s.Nil(err)
	s.Equal(user.Username(USERNAME), u.Username)
	s.False(u.IsActive())
	s.Equal(u.ID, result.User.ID)
	s.True(s.Uow.Context.WasCommitCalled)
}

func (s *testSuite) TestSuccessVerificationCodeIssued() {
	result, err := s.Service.Run(context.Background(), s.input())
	s.Nil(err)
	s.Equal(CODE, result.Code)

	code, err := s.Uow.Context.VerificationCodeRepository.GetByUserID(context.Background(), result.User.ID)
	s.Nil(err)
	s.Equal(CODE, code.Code)
	s.Equal(NOW, code.CreatedAt)
}

func (s *testSuite) TestEmailAlreadyExists() {
	_, err := s.Service.Run(context.Background(), s.input())
	s.Nil(err)

	input := s.input()
	input.Username = user.Username("other")
	_, err = s.Service.Run(context.Background(), input)
	s.True(errors.Is(err, user.ErrEmailAlreadyExists))
}

func (s *testSuite) TestUsernameAlreadyExists() {
	_, err := s.Service.Run(context.Background(), s.input())
	s.Nil(err)

	input := s.input()
	input.Email = c.Email("other@test.test")
	_, err = s.Service.Run(context.Background(), input)
	s.True(errors.Is(err, user.ErrUsernameAlreadyExists))
}

func (s *testSuite) TestUserCreationFailed() {
	s.Uow.Context.UserRepository.ReturnError = true

	_, err := s.Service.Run(context.Background(), s.input())
	s.NotNil(err)
	s.False(s.Uow.Context.WasCommitCalled)
}

func (s *testSuite) input() Input {
	return Input{
		Email:    c.Email(EMAIL),
		Username: user.Username(USERNAME),
		Password: user.RawPassword(PASSWORD),
	}
}
