package loginwithemail

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

const (
	EMAIL         = "ana@test.test"
	PASSWORD      = "test-password"
	SESSION_TOKEN = "test-session-token"
)

type testSuite struct {
	suite.Suite
	Logger            *logging.FakeLogger
	UserRepository    *user.FakeUserRepository
	SessionRepository *user.FakeSessionRepository
	Hasher            *user.FakePasswordHasher
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.SessionRepository = user.NewFakeSessionRepository(suite.UserRepository)
	suite.Hasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.SessionRepository,
		suite.Hasher,
		user.NewFakeSessionTokenGenerator(SESSION_TOKEN),
		func() time.Time { return time.Now().UTC() },
	)
}

func TestLogInWithEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	u := s.createUser(true)

	result, err := s.Service.Run(context.Background(), Input{
		Email:    u.Email,
		Password: user.RawPassword(PASSWORD),
	})
	s.Nil(err)
	s.Equal(user.SessionToken(SESSION_TOKEN), result.Token)

	sessionUser, err := s.SessionRepository.GetUserByToken(context.Background(), result.Token)
	s.Nil(err)
	s.Equal(u.ID, sessionUser.ID)
}

func (s *testSuite) TestUnknownEmail() {
	_, err := s.Service.Run(context.Background(), Input{
		Email:    c.Email(EMAIL),
		Password: user.RawPassword(PASSWORD),
	})
	s.True(errors.Is(err, user.ErrInvalidCredentials))
}

func (s *testSuite) TestWrongPassword() {
	u := s.createUser(true)

	_, err := s.Service.Run(context.Background(), Input{
		Email:    u.Email,
		Password: user.RawPassword("wrong-password"),
	})
	s.True(errors.Is(err, user.ErrInvalidCredentials))
}

func (s *testSuite) TestUserIsNotActive() {
	u := s.createUser(false)

	_, err := s.Service.Run(context.Background(), Input{
		Email:    u.Email,
		Password: user.RawPassword(PASSWORD),
	})
	s.True(errors.Is(err, user.ErrUserIsNotActive))
}

func (s *testSuite) createUser(isActive bool) user.User {
	passwordHash, err := s.Hasher.HashPassword(user.RawPassword(PASSWORD))
	s.Nil(err)

	activatedAt := c.Optional[time.Time]{}
	if isActive {
		activatedAt = c.NewOptional(time.Now().UTC(), true)
	}
	u, err := s.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(EMAIL),
		Username:     user.Username("ana"),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
		ActivatedAt:  activatedAt,
	})
	s.Nil(err)
	return u
}
