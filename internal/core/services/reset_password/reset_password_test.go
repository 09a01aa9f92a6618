package resetpassword

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
	EMAIL        = "ana@test.test"
	TOKEN        = "test-reset-token"
	NEW_PASSWORD = "new-test-password"
)

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	Resetter       *user.FakePasswordResetter
	Hasher         *user.FakePasswordHasher
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.Resetter = user.NewFakePasswordResetter(TOKEN, true)
	suite.Hasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.Resetter,
		user.NewFakeUserIDCodec(),
		suite.Hasher,
	)
}

func TestResetPasswordService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	u := s.createUser()

	_, err := s.Service.Run(context.Background(), Input{
		Uid:         user.EncodedUserID("uid-1"),
		Token:       user.PasswordResetToken(TOKEN),
		NewPassword: user.RawPassword(NEW_PASSWORD),
	})
	s.Nil(err)

	updated, err := s.UserRepository.GetByID(context.Background(), u.ID)
	s.Nil(err)
	s.True(s.Hasher.ValidatePassword(user.RawPassword(NEW_PASSWORD), updated.PasswordHash))
}

func (s *testSuite) TestMalformedUid() {
	s.createUser()

	_, err := s.Service.Run(context.Background(), Input{
		Uid:         user.EncodedUserID("garbage"),
		Token:       user.PasswordResetToken(TOKEN),
		NewPassword: user.RawPassword(NEW_PASSWORD),
	})
	s.True(errors.Is(err, user.ErrInvalidPasswordResetToken))
}

func (s *testSuite) TestUnknownUserID() {
	s.createUser()

	_, err := s.Service.Run(context.Background(), Input{
		Uid:         user.EncodedUserID("uid-42"),
		Token:       user.PasswordResetToken(TOKEN),
		NewPassword: user.RawPassword(NEW_PASSWORD),
	})
	s.True(errors.Is(err, user.ErrInvalidPasswordResetToken))
}

func (s *testSuite) TestInvalidToken() {
	u := s.createUser()
	s.Resetter.IsValid = false

	_, err := s.Service.Run(context.Background(), Input{
		Uid:         user.EncodedUserID("uid-1"),
		Token:       user.PasswordResetToken(TOKEN),
		NewPassword: user.RawPassword(NEW_PASSWORD),
	})
	s.True(errors.Is(err, user.ErrInvalidPasswordResetToken))

	stored, getErr := s.UserRepository.GetByID(context.Background(), u.ID)
	s.Nil(getErr)
	s.Equal(u.PasswordHash, stored.PasswordHash)
}

func (s *testSuite) TestWrongToken() {
	s.createUser()

	_, err := s.Service.Run(context.Background(), Input{
		Uid:         user.EncodedUserID("uid-1"),
		Token:       user.PasswordResetToken("other-token"),
		NewPassword: user.RawPassword(NEW_PASSWORD),
	})
	s.True(errors.Is(err, user.ErrInvalidPasswordResetToken))
}

func (s *testSuite) createUser() user.User {
	u, err := s.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(EMAIL),
		Username:     user.Username("ana"),
		PasswordHash: user.PasswordHash("old-hash"),
		CreatedAt:    time.Now().UTC(),
		ActivatedAt:  c.NewOptional(time.Now().UTC(), true),
	})
	s.Nil(err)
	return u
}
