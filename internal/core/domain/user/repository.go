package user

import (
	"context"
	c "shopapi/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	Username     Username
	PhoneNumber  c.Optional[PhoneNumber]
	FirstName    c.Optional[string]
	LastName     c.Optional[string]
	PasswordHash PasswordHash
	CreatedAt    time.Time
	ActivatedAt  c.Optional[time.Time]
}

type UpdateUserInput struct {
	ID                  ID
	DoPhoneNumberUpdate bool
	PhoneNumber         c.Optional[PhoneNumber]
	DoFirstNameUpdate   bool
	FirstName           c.Optional[string]
	DoLastNameUpdate    bool
	LastName            c.Optional[string]
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	List(ctx context.Context) ([]User, error)
	// Activate sets the activation timestamp. Activating an already active
	// user is a no-op and is not an error.
	Activate(ctx context.Context, id ID, at time.Time) (User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
	Update(ctx context.Context, input UpdateUserInput) (User, error)
	Delete(ctx context.Context, id ID) error
}

type CreateSessionInput struct {
	UserID    ID
	Token     SessionToken
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetUserByToken(ctx context.Context, token SessionToken) (User, error)
	Delete(ctx context.Context, token SessionToken) (userID ID, err error)
}
