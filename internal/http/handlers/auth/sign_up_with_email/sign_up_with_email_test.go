package signupwithemail

import (
	"context"
	"net/http"
	"net/http/httptest"
	"shopapi/internal/core/domain/user"
	service "shopapi/internal/core/services/sign_up_with_email"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err    error
	called bool
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.called = true
	if s.err != nil {
		return result, s.err
	}
	result.User = user.User{
		ID:        user.ID(1),
		Email:     "ana@test.test",
		Username:  "ana",
		CreatedAt: time.Now().UTC(),
	}
	result.Code = "123456"
	return result, nil
}

func TestSignUpWithEmailHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{
			id:             "success",
			body:           `{"email": "ana@test.test", "username": "ana", "password": "test-password", "password2": "test-password"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			id:             "invalid-json",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid-email",
			body:           `{"email": "not-an-email", "username": "ana", "password": "test-password", "password2": "test-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "username-too-short",
			body:           `{"email": "ana@test.test", "username": "an", "password": "test-password", "password2": "test-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "email-already-exists",
			body:           `{"email": "ana@test.test", "username": "ana", "password": "test-password", "password2": "test-password"}`,
			serviceErr:     user.ErrEmailAlreadyExists,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id:             "username-already-exists",
			body:           `{"email": "ana@test.test", "username": "ana", "password": "test-password", "password2": "test-password"}`,
			serviceErr:     user.ErrUsernameAlreadyExists,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			handler := New(&stubService{err: testcase.serviceErr}, false)

			request := httptest.NewRequest(
				http.MethodPost,
				"/auth/signup",
				strings.NewReader(testcase.body),
			)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
		})
	}
}

func TestPasswordConfirmationMismatchStopsAtValidation(t *testing.T) {
	stub := &stubService{}
	handler := New(stub, false)

	request := httptest.NewRequest(
		http.MethodPost,
		"/auth/signup",
		strings.NewReader(
			`{"email": "ana@test.test", "username": "ana", "password": "password-1", "password2": "password-2"}`,
		),
	)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert := assert.New(t)
	assert.Equal(http.StatusBadRequest, recorder.Code)
	assert.False(stub.called)
	assert.Contains(recorder.Body.String(), "passwords do not match")
}

func TestVerificationCodeHeaderInTestMode(t *testing.T) {
	handler := New(&stubService{}, true)

	request := httptest.NewRequest(
		http.MethodPost,
		"/auth/signup",
		strings.NewReader(
			`{"email": "ana@test.test", "username": "ana", "password": "test-password", "password2": "test-password"}`,
		),
	)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "123456", recorder.Header().Get("x-test-verification-code"))
}
