package user

import "context"

type PasswordResetToken string

// EncodedUserID is a reversible, non-secret transport encoding of a user ID,
// sent alongside the password reset token.
type EncodedUserID string

// PasswordResetter derives and checks stateless reset tokens. A token is
// bound to the user's current password hash, so the password change it
// authorizes also invalidates it.
type PasswordResetter interface {
	GenerateToken(u User) PasswordResetToken
	ValidateToken(u User, token PasswordResetToken) bool
}

type UserIDCodec interface {
	EncodeUserID(id ID) EncodedUserID
	DecodeUserID(encoded EncodedUserID) (ID, bool)
}

type PasswordResetTokenSender interface {
	SendPasswordResetToken(ctx context.Context, u User, uid EncodedUserID, token PasswordResetToken) error
}

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

type SessionTokenGenerator interface {
	GenerateSessionToken() SessionToken
}
