package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	c "shopapi/internal/core/domain/common"
	"sync"
	"time"
)

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		if u.Username == input.Username {
			return u, ErrUsernameAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		Username:     input.Username,
		PhoneNumber:  input.PhoneNumber,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
		ActivatedAt:  input.ActivatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) Activate(ctx context.Context, id ID, at time.Time) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			if !r.Users[ix].IsActive() {
				r.Users[ix].ActivatedAt = c.NewOptional(at, true)
			}
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, id ID, password PasswordHash) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordHash = password
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) Update(ctx context.Context, input UpdateUserInput) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == input.ID {
			if input.DoPhoneNumberUpdate {
				r.Users[ix].PhoneNumber = input.PhoneNumber
			}
			if input.DoFirstNameUpdate {
				r.Users[ix].FirstName = input.FirstName
			}
			if input.DoLastNameUpdate {
				r.Users[ix].LastName = input.LastName
			}
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) List(ctx context.Context) ([]User, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list users")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	users := make([]User, len(r.Users))
	copy(users, r.Users)
	return users, nil
}

func (r *FakeUserRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users = append(r.Users[:ix], r.Users[ix+1:]...)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

type FakeVerificationCodeRepository struct {
	Codes       map[ID]VerificationCode
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeVerificationCodeRepository() *FakeVerificationCodeRepository {
	return &FakeVerificationCodeRepository{Codes: make(map[ID]VerificationCode)}
}

func (r *FakeVerificationCodeRepository) Replace(
	ctx context.Context,
	input CreateVerificationCodeInput,
) (code VerificationCode, err error) {
	if r.ReturnError {
		return code, fmt.Errorf("could not replace verification code %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	code = VerificationCode{UserID: input.UserID, Code: input.Code, CreatedAt: input.CreatedAt}
	r.Codes[input.UserID] = code
	return code, nil
}

func (r *FakeVerificationCodeRepository) ReplaceIfOlder(
	ctx context.Context,
	input CreateVerificationCodeInput,
	minAge time.Duration,
) (code VerificationCode, err error) {
	if r.ReturnError {
		return code, fmt.Errorf("could not replace verification code %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	existing, ok := r.Codes[input.UserID]
	if ok && existing.CreatedAt.After(input.CreatedAt.Add(-minAge)) {
		return code, &CodeIssuedRecentlyError{IssuedAt: existing.CreatedAt}
	}
	code = VerificationCode{UserID: input.UserID, Code: input.Code, CreatedAt: input.CreatedAt}
	r.Codes[input.UserID] = code
	return code, nil
}

func (r *FakeVerificationCodeRepository) GetByUserID(ctx context.Context, userID ID) (code VerificationCode, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	code, ok := r.Codes[userID]
	if !ok {
		return code, ErrVerificationCodeNotFound
	}
	return code, nil
}

func (r *FakeVerificationCodeRepository) Delete(ctx context.Context, userID ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.Codes[userID]; !ok {
		return ErrVerificationCodeNotFound
	}
	delete(r.Codes, userID)
	return nil
}

type FakeVerificationCodeGenerator struct {
	Code string
}

func NewFakeVerificationCodeGenerator(code string) *FakeVerificationCodeGenerator {
	return &FakeVerificationCodeGenerator{Code: code}
}

func (g *FakeVerificationCodeGenerator) GenerateVerificationCode() string {
	return g.Code
}

type FakeVerificationCodeSender struct {
	Sent        []User
	SentCodes   []string
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeVerificationCodeSender() *FakeVerificationCodeSender {
	return &FakeVerificationCodeSender{}
}

func (s *FakeVerificationCodeSender) SendVerificationCode(ctx context.Context, u User, code string) error {
	if s.ReturnError {
		return fmt.Errorf("could not send verification code for user %v", u)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, u)
	s.SentCodes = append(s.SentCodes, code)
	return nil
}

func (s *FakeVerificationCodeSender) SentCount() int {
	return len(s.Sent)
}

type FakeSessionRepository struct {
	UserIdByToken  map[SessionToken]ID
	UserRepository UserRepository
	ReturnError    bool
	lock           sync.Mutex
}

func NewFakeSessionRepository(userRepository UserRepository) *FakeSessionRepository {
	return &FakeSessionRepository{
		UserIdByToken:  make(map[SessionToken]ID),
		UserRepository: userRepository,
	}
}

func (r *FakeSessionRepository) Create(ctx context.Context, input CreateSessionInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not create session %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.UserIdByToken[input.Token] = input.UserID
	return nil
}

func (r *FakeSessionRepository) GetUserByToken(ctx context.Context, token SessionToken) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	userId, ok := r.UserIdByToken[token]
	if !ok {
		return u, ErrUserDoesNotExist
	}
	return r.UserRepository.GetByID(ctx, userId)
}

func (r *FakeSessionRepository) Delete(ctx context.Context, token SessionToken) (ID, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	userID, ok := r.UserIdByToken[token]
	if !ok {
		return ID(0), ErrSessionDoesNotExist
	}
	delete(r.UserIdByToken, token)
	return userID, nil
}

type FakeSessionTokenGenerator struct {
	Token string
}

func NewFakeSessionTokenGenerator(token string) *FakeSessionTokenGenerator {
	return &FakeSessionTokenGenerator{Token: token}
}

func (g *FakeSessionTokenGenerator) GenerateSessionToken() SessionToken {
	return SessionToken(g.Token)
}

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakePasswordResetter struct {
	Token   PasswordResetToken
	IsValid bool
}

func NewFakePasswordResetter(token string, isValid bool) *FakePasswordResetter {
	return &FakePasswordResetter{Token: PasswordResetToken(token), IsValid: isValid}
}

func (r *FakePasswordResetter) GenerateToken(u User) PasswordResetToken {
	return r.Token
}

func (r *FakePasswordResetter) ValidateToken(u User, token PasswordResetToken) bool {
	return r.IsValid && token == r.Token
}

type FakeUserIDCodec struct{}

func NewFakeUserIDCodec() *FakeUserIDCodec {
	return &FakeUserIDCodec{}
}

func (c *FakeUserIDCodec) EncodeUserID(id ID) EncodedUserID {
	return EncodedUserID(fmt.Sprintf("uid-%d", id))
}

func (c *FakeUserIDCodec) DecodeUserID(encoded EncodedUserID) (id ID, ok bool) {
	n, err := fmt.Sscanf(string(encoded), "uid-%d", &id)
	if err != nil || n != 1 {
		return id, false
	}
	return id, true
}

type FakePasswordResetTokenSender struct {
	Sent        []User
	SentUids    []EncodedUserID
	SentTokens  []PasswordResetToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetTokenSender() *FakePasswordResetTokenSender {
	return &FakePasswordResetTokenSender{}
}

func (s *FakePasswordResetTokenSender) SendPasswordResetToken(
	ctx context.Context,
	u User,
	uid EncodedUserID,
	token PasswordResetToken,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset token for user %v", u)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, u)
	s.SentUids = append(s.SentUids, uid)
	s.SentTokens = append(s.SentTokens, token)
	return nil
}

func (s *FakePasswordResetTokenSender) SentCount() int {
	return len(s.Sent)
}
