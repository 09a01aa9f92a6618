package useridcodec

import (
	"encoding/base64"
	"shopapi/internal/core/domain/user"
	"strconv"
)

// Base64 encodes user IDs for password reset links. The ID travels
// separately from the reset token, as an opaque url-safe string.
type Base64 struct{}

func NewBase64() *Base64 {
	return &Base64{}
}

func (c *Base64) EncodeUserID(id user.ID) user.EncodedUserID {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatInt(int64(id), 10)))
	return user.EncodedUserID(encoded)
}

func (c *Base64) DecodeUserID(encoded user.EncodedUserID) (id user.ID, ok bool) {
	decoded, err := base64.RawURLEncoding.DecodeString(string(encoded))
	if err != nil {
		return id, false
	}
	rawID, err := strconv.ParseInt(string(decoded), 10, 64)
	if err != nil || rawID <= 0 {
		return id, false
	}
	return user.ID(rawID), true
}
