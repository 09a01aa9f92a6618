package resendverificationcode

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
	EMAIL    = "ana@test.test"
	OLD_CODE = "111111"
	NEW_CODE = "222222"
)

var NOW time.Time = time.Now().UTC().Truncate(time.Second)

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	CodeRepository *user.FakeVerificationCodeRepository
	Now            time.Time
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.CodeRepository = user.NewFakeVerificationCodeRepository()
	suite.Now = NOW
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.CodeRepository,
		user.NewFakeVerificationCodeGenerator(NEW_CODE),
		func() time.Time { return suite.Now },
	)
}

func TestResendVerificationCodeService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestUserDoesNotExist() {
	_, err := s.Service.Run(context.Background(), Input{Email: c.Email(EMAIL)})
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) TestNoPreviousCode() {
	u := s.createUser()

	result, err := s.Service.Run(context.Background(), Input{Email: u.Email})
	s.Nil(err)
	s.Equal(NEW_CODE, result.Code)

	code, err := s.CodeRepository.GetByUserID(context.Background(), u.ID)
	s.Nil(err)
	s.Equal(NEW_CODE, code.Code)
}

func (s *testSuite) TestThrottledWithinCooldown() {
	u := s.createUser()
	s.createCode(u.ID, NOW.Add(-15*time.Second))

	_, err := s.Service.Run(context.Background(), Input{Email: u.Email})

	var errThrottled *user.VerificationCodeThrottledError
	s.True(errors.As(err, &errThrottled))
	s.Equal(int64(45), errThrottled.WaitSeconds)

	code, err := s.CodeRepository.GetByUserID(context.Background(), u.ID)
	s.Nil(err)
	s.Equal(OLD_CODE, code.Code)
}

func (s *testSuite) TestThrottledJustIssued() {
	u := s.createUser()
	s.createCode(u.ID, NOW)

	_, err := s.Service.Run(context.Background(), Input{Email: u.Email})

	var errThrottled *user.VerificationCodeThrottledError
	s.True(errors.As(err, &errThrottled))
	s.Equal(int64(60), errThrottled.WaitSeconds)
}

func (s *testSuite) TestAllowedAtCooldownBoundary() {
	u := s.createUser()
	s.createCode(u.ID, NOW.Add(-user.ResendCooldown))

	result, err := s.Service.Run(context.Background(), Input{Email: u.Email})
	s.Nil(err)
	s.Equal(NEW_CODE, result.Code)
}

func (s *testSuite) TestOldCodeReplaced() {
	u := s.createUser()
	s.createCode(u.ID, NOW.Add(-2*time.Minute))

	_, err := s.Service.Run(context.Background(), Input{Email: u.Email})
	s.Nil(err)

	code, err := s.CodeRepository.GetByUserID(context.Background(), u.ID)
	s.Nil(err)
	s.Equal(NEW_CODE, code.Code)
	s.Equal(NOW, code.CreatedAt)
}

func (s *testSuite) createUser() user.User {
	u, err := s.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(EMAIL),
		Username:     user.Username("ana"),
		PasswordHash: user.PasswordHash("test-hash"),
		CreatedAt:    NOW.Add(-time.Hour),
	})
	s.Nil(err)
	return u
}

func (s *testSuite) createCode(userID user.ID, createdAt time.Time) {
	_, err := s.CodeRepository.Replace(context.Background(), user.CreateVerificationCodeInput{
		UserID:    userID,
		Code:      OLD_CODE,
		CreatedAt: createdAt,
	})
	s.Nil(err)
}
