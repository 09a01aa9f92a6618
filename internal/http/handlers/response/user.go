package response

import (
	"shopapi/internal/core/domain/user"
	"time"
)

type User struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	FirstName   *string    `json:"first_name,omitempty"`
	LastName    *string    `json:"last_name,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Email = string(du.Email)
	u.Username = string(du.Username)
	if du.PhoneNumber.IsPresent {
		phoneNumber := string(du.PhoneNumber.Value)
		u.PhoneNumber = &phoneNumber
	}
	if du.FirstName.IsPresent {
		firstName := du.FirstName.Value
		u.FirstName = &firstName
	}
	if du.LastName.IsPresent {
		lastName := du.LastName.Value
		u.LastName = &lastName
	}
	u.CreatedAt = du.CreatedAt
	if du.ActivatedAt.IsPresent {
		activatedAt := du.ActivatedAt.Value
		u.ActivatedAt = &activatedAt
	}
}
