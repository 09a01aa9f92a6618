package user

import (
	"fmt"
	c "shopapi/internal/core/domain/common"
	e "shopapi/internal/core/domain/errors"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type Username string

type PhoneNumber string

type SessionToken string

type User struct {
	ID           ID
	Email        c.Email
	Username     Username
	PhoneNumber  c.Optional[PhoneNumber]
	FirstName    c.Optional[string]
	LastName     c.Optional[string]
	PasswordHash PasswordHash
	CreatedAt    time.Time
	ActivatedAt  c.Optional[time.Time]
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.Username == "" {
		return e.NewInvalidStateError(fmt.Sprintf("username is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	return nil
}

func (u *User) IsActive() bool {
	return u.ActivatedAt.IsPresent
}
