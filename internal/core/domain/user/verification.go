package user

import (
	"context"
	"time"
)

// ResendCooldown is the minimum interval between two verification codes
// issued to the same user.
const ResendCooldown = time.Minute

type VerificationCode struct {
	UserID    ID
	Code      string
	CreatedAt time.Time
}

type CreateVerificationCodeInput struct {
	UserID    ID
	Code      string
	CreatedAt time.Time
}

// VerificationCodeRepository stores at most one code per user, latest wins.
type VerificationCodeRepository interface {
	// Replace upserts the user's code unconditionally.
	Replace(ctx context.Context, input CreateVerificationCodeInput) (VerificationCode, error)
	// ReplaceIfOlder upserts the user's code only if the existing one was
	// created at least minAge before input.CreatedAt. The upsert and the age
	// check must form a single atomic statement. Returns
	// *CodeIssuedRecentlyError if the existing code is too fresh.
	ReplaceIfOlder(
		ctx context.Context,
		input CreateVerificationCodeInput,
		minAge time.Duration,
	) (VerificationCode, error)
	GetByUserID(ctx context.Context, userID ID) (VerificationCode, error)
	Delete(ctx context.Context, userID ID) error
}

type VerificationCodeGenerator interface {
	GenerateVerificationCode() string
}

type VerificationCodeSender interface {
	SendVerificationCode(ctx context.Context, u User, code string) error
}
