package user

import (
	"context"
	"database/sql"
	"errors"
	c "shopapi/internal/core/domain/common"
	e "shopapi/internal/core/domain/errors"
	"shopapi/internal/core/domain/user"
	"shopapi/internal/db"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"
const USERNAME_CONSTRAINT_NAME = "user_username_idx"

const userColumns = `id, email, username, phone_number, first_name, last_name, password_hash, created_at, activated_at`

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (email, username, phone_number, first_name, last_name, password_hash, created_at, activated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+userColumns,
		string(input.Email),
		string(input.Username),
		encodeOptionalString(c.Optional[string]{
			Value:     string(input.PhoneNumber.Value),
			IsPresent: input.PhoneNumber.IsPresent,
		}),
		encodeOptionalString(input.FirstName),
		encodeOptionalString(input.LastName),
		string(input.PasswordHash),
		input.CreatedAt,
		encodeOptionalTime(input.ActivatedAt),
	)
	u, err = scanUser(row)

	var errUniqueConstraint *pgconn.PgError
	if errors.As(err, &errUniqueConstraint) && errUniqueConstraint.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE {
		switch errUniqueConstraint.ConstraintName {
		case EMAIL_CONSTRAINT_NAME:
			return u, user.ErrEmailAlreadyExists
		case USERNAME_CONSTRAINT_NAME:
			return u, user.ErrUsernameAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}
	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE id = $1`, int64(id))
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE email = $1`, string(email))
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM "user" ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PgxUserRepository) Activate(ctx context.Context, id user.ID, at time.Time) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE "user" SET activated_at = COALESCE(activated_at, $2) WHERE id = $1 RETURNING `+userColumns,
		int64(id),
		at,
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) SetPassword(ctx context.Context, id user.ID, password user.PasswordHash) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET password_hash = $2 WHERE id = $1`,
		int64(id),
		string(password),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE "user" SET
			phone_number = CASE WHEN $2 THEN $3 ELSE phone_number END,
			first_name = CASE WHEN $4 THEN $5 ELSE first_name END,
			last_name = CASE WHEN $6 THEN $7 ELSE last_name END
		 WHERE id = $1
		 RETURNING ` + userColumns,
		int64(input.ID),
		input.DoPhoneNumberUpdate,
		encodeOptionalString(c.Optional[string]{
			Value:     string(input.PhoneNumber.Value),
			IsPresent: input.PhoneNumber.IsPresent,
		}),
		input.DoFirstNameUpdate,
		encodeOptionalString(input.FirstName),
		input.DoLastNameUpdate,
		encodeOptionalString(input.LastName),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) Delete(ctx context.Context, id user.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM "user" WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var id int64
	var email, username, passwordHash string
	var phoneNumber, firstName, lastName sql.NullString
	var createdAt time.Time
	var activatedAt sql.NullTime

	err = row.Scan(
		&id,
		&email,
		&username,
		&phoneNumber,
		&firstName,
		&lastName,
		&passwordHash,
		&createdAt,
		&activatedAt,
	)
	if err != nil {
		return u, err
	}
	return user.User{
		ID:           user.ID(id),
		Email:        c.Email(email),
		Username:     user.Username(username),
		PhoneNumber:  c.NewOptional(user.PhoneNumber(phoneNumber.String), phoneNumber.Valid),
		FirstName:    c.NewOptional(firstName.String, firstName.Valid),
		LastName:     c.NewOptional(lastName.String, lastName.Valid),
		PasswordHash: user.PasswordHash(passwordHash),
		CreatedAt:    createdAt,
		ActivatedAt:  c.NewOptional(activatedAt.Time, activatedAt.Valid),
	}, nil
}

func encodeOptionalString(s c.Optional[string]) sql.NullString {
	return sql.NullString{String: s.Value, Valid: s.IsPresent}
}

func encodeOptionalTime(at c.Optional[time.Time]) sql.NullTime {
	return sql.NullTime{Time: at.Value, Valid: at.IsPresent}
}
