package resetpassword

import (
	"context"
	"net/http"
	"net/http/httptest"
	"shopapi/internal/core/domain/user"
	service "shopapi/internal/core/services/reset_password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err    error
	called bool
	input  *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.called = true
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	return result, nil
}

func TestResetPasswordHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{
			id:             "success",
			body:           `{"uid": "MTIz", "token": "test-token", "password": "new-password", "password2": "new-password"}`,
			expectedStatus: http.StatusOK,
		},
		{
			id:             "invalid-json",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing-token",
			body:           `{"uid": "MTIz", "password": "new-password", "password2": "new-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "password-too-short",
			body:           `{"uid": "MTIz", "token": "test-token", "password": "short", "password2": "short"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid-token",
			body:           `{"uid": "MTIz", "token": "test-token", "password": "new-password", "password2": "new-password"}`,
			serviceErr:     user.ErrInvalidPasswordResetToken,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			handler := New(&stubService{err: testcase.serviceErr})

			request := httptest.NewRequest(
				http.MethodPut,
				"/auth/password_reset",
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
	handler := New(stub)

	request := httptest.NewRequest(
		http.MethodPut,
		"/auth/password_reset",
		strings.NewReader(
			`{"uid": "MTIz", "token": "test-token", "password": "password-1", "password2": "password-2"}`,
		),
	)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert := assert.New(t)
	assert.Equal(http.StatusBadRequest, recorder.Code)
	assert.False(stub.called)
	assert.Contains(recorder.Body.String(), "passwords do not match")
}

func TestServiceInput(t *testing.T) {
	stub := &stubService{}
	handler := New(stub)

	request := httptest.NewRequest(
		http.MethodPut,
		"/auth/password_reset",
		strings.NewReader(
			`{"uid": "MTIz", "token": "test-token", "password": "new-password", "password2": "new-password"}`,
		),
	)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, recorder.Code)
	if assert.NotNil(stub.input) {
		assert.Equal(user.EncodedUserID("MTIz"), stub.input.Uid)
		assert.Equal(user.PasswordResetToken("test-token"), stub.input.Token)
		assert.Equal(user.RawPassword("new-password"), stub.input.NewPassword)
	}
}
