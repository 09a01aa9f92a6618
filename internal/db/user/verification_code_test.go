package user

import (
	"context"
	"errors"
	c "shopapi/internal/core/domain/common"
	"shopapi/internal/core/domain/user"
	"shopapi/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

type verificationCodeTestSuite struct {
	suite.Suite
	pool     *pgxpool.Pool
	userRepo *PgxUserRepository
	repo     *PgxVerificationCodeRepository
}

func (suite *verificationCodeTestSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.userRepo = NewPgxRepository(suite.pool)
	suite.repo = NewPgxVerificationCodeRepository(suite.pool)
}

func (suite *verificationCodeTestSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *verificationCodeTestSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxVerificationCodeRepository(t *testing.T) {
	suite.Run(t, new(verificationCodeTestSuite))
}

func (s *verificationCodeTestSuite) TestReplaceCreatesAndOverwrites() {
	u := s.createUser()

	first, err := s.repo.Replace(context.Background(), user.CreateVerificationCodeInput{
		UserID:    u.ID,
		Code:      "111111",
		CreatedAt: NOW,
	})
	s.Nil(err)
	s.Equal("111111", first.Code)

	second, err := s.repo.Replace(context.Background(), user.CreateVerificationCodeInput{
		UserID:    u.ID,
		Code:      "222222",
		CreatedAt: NOW.Add(time.Second),
	})
	s.Nil(err)
	s.Equal("222222", second.Code)

	stored, err := s.repo.GetByUserID(context.Background(), u.ID)
	s.Nil(err)
	s.Equal("222222", stored.Code)
}

func (s *verificationCodeTestSuite) TestReplaceIfOlderRejectsRecentCode() {
	u := s.createUser()

	_, err := s.repo.Replace(context.Background(), user.CreateVerificationCodeInput{
		UserID:    u.ID,
		Code:      "111111",
		CreatedAt: NOW,
	})
	s.Nil(err)

	_, err = s.repo.ReplaceIfOlder(
		context.Background(),
		user.CreateVerificationCodeInput{
			UserID:    u.ID,
			Code:      "222222",
			CreatedAt: NOW.Add(30 * time.Second),
		},
		user.ResendCooldown,
	)

	var errIssuedRecently *user.CodeIssuedRecentlyError
	s.Require().True(errors.As(err, &errIssuedRecently))
	s.True(NOW.Equal(errIssuedRecently.IssuedAt))

	stored, getErr := s.repo.GetByUserID(context.Background(), u.ID)
	s.Nil(getErr)
	s.Equal("111111", stored.Code)
}

func (s *verificationCodeTestSuite) TestReplaceIfOlderAcceptsAgedCode() {
	u := s.createUser()

	_, err := s.repo.Replace(context.Background(), user.CreateVerificationCodeInput{
		UserID:    u.ID,
		Code:      "111111",
		CreatedAt: NOW,
	})
	s.Nil(err)

	code, err := s.repo.ReplaceIfOlder(
		context.Background(),
		user.CreateVerificationCodeInput{
			UserID:    u.ID,
			Code:      "222222",
			CreatedAt: NOW.Add(user.ResendCooldown),
		},
		user.ResendCooldown,
	)
	s.Nil(err)
	s.Equal("222222", code.Code)
}

func (s *verificationCodeTestSuite) TestReplaceIfOlderWithoutExistingCode() {
	u := s.createUser()

	code, err := s.repo.ReplaceIfOlder(
		context.Background(),
		user.CreateVerificationCodeInput{
			UserID:    u.ID,
			Code:      "111111",
			CreatedAt: NOW,
		},
		user.ResendCooldown,
	)
	s.Nil(err)
	s.Equal("111111", code.Code)
}

func (s *verificationCodeTestSuite) TestDelete() {
	u := s.createUser()

	_, err := s.repo.Replace(context.Background(), user.CreateVerificationCodeInput{
		UserID:    u.ID,
		Code:      "111111",
		CreatedAt: NOW,
	})
	s.Nil(err)

	s.Nil(s.repo.Delete(context.Background(), u.ID))

	_, err = s.repo.GetByUserID(context.Background(), u.ID)
	s.ErrorIs(err, user.ErrVerificationCodeNotFound)

	s.ErrorIs(s.repo.Delete(context.Background(), u.ID), user.ErrVerificationCodeNotFound)
}

func (s *verificationCodeTestSuite) createUser() user.User {
	u, err := s.userRepo.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(EMAIL),
		Username:     user.Username(USERNAME),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		CreatedAt:    NOW,
	})
	s.Require().Nil(err)
	return u
}
