package user

import (
	"context"
	"errors"
	e "shopapi/internal/core/domain/errors"
	"shopapi/internal/core/domain/user"
	"shopapi/internal/db"
	"time"

	"github.com/jackc/pgx/v4"
)

type PgxVerificationCodeRepository struct {
	db db.DBTX
}

func NewPgxVerificationCodeRepository(db db.DBTX) *PgxVerificationCodeRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxVerificationCodeRepository{db: db}
}

func (r *PgxVerificationCodeRepository) Replace(
	ctx context.Context,
	input user.CreateVerificationCodeInput,
) (code user.VerificationCode, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO verification_code (user_id, code, created_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET code = EXCLUDED.code, created_at = EXCLUDED.created_at
		 RETURNING user_id, code, created_at`,
		int64(input.UserID),
		input.Code,
		input.CreatedAt,
	)
	return scanVerificationCode(row)
}

// ReplaceIfOlder is a single statement, concurrent resend requests for
// one user cannot both pass the age check.
func (r *PgxVerificationCodeRepository) ReplaceIfOlder(
	ctx context.Context,
	input user.CreateVerificationCodeInput,
	minAge time.Duration,
) (code user.VerificationCode, err error) {
	threshold := input.CreatedAt.Add(-minAge)
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO verification_code (user_id, code, created_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET code = EXCLUDED.code, created_at = EXCLUDED.created_at
		 WHERE verification_code.created_at <= $4
		 RETURNING user_id, code, created_at`,
		int64(input.UserID),
		input.Code,
		input.CreatedAt,
		threshold,
	)
	code, err = scanVerificationCode(row)
	if errors.Is(err, pgx.ErrNoRows) {
		existing, getErr := r.GetByUserID(ctx, input.UserID)
		if getErr != nil {
			// The existing code disappeared between the two queries,
			// report the conservative wait time.
			return code, &user.CodeIssuedRecentlyError{IssuedAt: input.CreatedAt}
		}
		return code, &user.CodeIssuedRecentlyError{IssuedAt: existing.CreatedAt}
	}
	return code, err
}

func (r *PgxVerificationCodeRepository) GetByUserID(
	ctx context.Context,
	userID user.ID,
) (code user.VerificationCode, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT user_id, code, created_at FROM verification_code WHERE user_id = $1`,
		int64(userID),
	)
	code, err = scanVerificationCode(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return code, user.ErrVerificationCodeNotFound
	}
	return code, err
}

func (r *PgxVerificationCodeRepository) Delete(ctx context.Context, userID user.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM verification_code WHERE user_id = $1`, int64(userID))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrVerificationCodeNotFound
	}
	return nil
}

func scanVerificationCode(row pgx.Row) (code user.VerificationCode, err error) {
	var userID int64
	var rawCode string
	var createdAt time.Time
	if err = row.Scan(&userID, &rawCode, &createdAt); err != nil {
		return code, err
	}
	return user.VerificationCode{
		UserID:    user.ID(userID),
		Code:      rawCode,
		CreatedAt: createdAt,
	}, nil
}
