package schema

import (
	"encoding/json"
)

const (
	KindVerificationCode   = "verification_code"
	KindPasswordResetToken = "password_reset_token"
)

// Notification is the envelope for email notifications dispatched
// through the message broker to the worker process.
type Notification struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Email string `json:"email"`

	// Verification code notifications.
	Username string `json:"username,omitempty"`
	Code     string `json:"code,omitempty"`

	// Password reset notifications.
	Uid   string `json:"uid,omitempty"`
	Token string `json:"token,omitempty"`
}

func (n *Notification) Marshal() ([]byte, error) {
	return json.Marshal(n)
}

func (n *Notification) Unmarshal(data []byte) error {
	return json.Unmarshal(data, n)
}
