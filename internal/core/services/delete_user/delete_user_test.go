package deleteuser

import (
	"context"
	"errors"
	c "shopapi/internal/core/domain/common"
	"shopapi/internal/core/domain/logging"
	"shopapi/internal/core/domain/user"
	"shopapi/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
	)
}

func TestDeleteUserService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	u := s.createUser()

	_, err := s.Service.Run(context.Background(), Input{UserID: u.ID})
	s.Nil(err)

	_, err = s.UserRepository.GetByID(context.Background(), u.ID)
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) TestUserDoesNotExist() {
	_, err := s.Service.Run(context.Background(), Input{UserID: user.ID(111)})
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) createUser() user.User {
	u, err := s.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email("ana@test.test"),
		Username:     user.Username("ana"),
		PasswordHash: user.PasswordHash("test-hash"),
		CreatedAt:    time.Now().UTC(),
		ActivatedAt:  c.NewOptional(time.Now().UTC(), true),
	})
	s.Nil(err)
	return u
}
