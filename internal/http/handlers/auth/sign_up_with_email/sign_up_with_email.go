package signupwithemail

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "shopapi/internal/core/domain/common"
	e "shopapi/internal/core/domain/errors"
	"shopapi/internal/core/domain/user"
	"shopapi/internal/core/services"
	signupwithemail "shopapi/internal/core/services/sign_up_with_email"
	"shopapi/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service    services.Service[signupwithemail.Input, signupwithemail.Result]
	isTestMode bool
}

func New(
	service services.Service[signupwithemail.Input, signupwithemail.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	Email       string  `json:"email"`
	Username    string  `json:"username"`
	PhoneNumber *string `json:"phone_number"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Password    string  `json:"password"`
	Password2   string  `json:"password2"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Username, validation.Required, validation.Length(3, 64)),
		validation.Field(&i.PhoneNumber, validation.Length(0, 32)),
		validation.Field(&i.FirstName, validation.Length(0, 64)),
		validation.Field(&i.LastName, validation.Length(0, 64)),
		validation.Field(&i.Password, validation.Required, validation.Length(6, 256)),
		validation.Field(
			&i.Password2,
			validation.Required,
			validation.In(i.Password).Error("passwords do not match"),
		),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		signupwithemail.Input{
			Email:       c.NewEmail(input.Email),
			Username:    user.Username(input.Username),
			PhoneNumber: optionalPhoneNumber(input.PhoneNumber),
			FirstName:   optionalString(input.FirstName),
			LastName:    optionalString(input.LastName),
			Password:    user.RawPassword(input.Password),
		},
	)
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		response.RenderError(rw, "email already exists", http.StatusUnprocessableEntity)
		return
	}
	if errors.Is(err, user.ErrUsernameAlreadyExists) {
		response.RenderError(rw, "username already exists", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	if h.isTestMode {
		rw.Header().Set("x-test-verification-code", result.Code)
	}
	responseUser := response.User{}
	responseUser.FromDomainUser(result.User)
	response.Render(rw, responseUser, http.StatusCreated)
}

func optionalString(s *string) c.Optional[string] {
	if s == nil {
		return c.Optional[string]{}
	}
	return c.NewOptional(*s, true)
}

func optionalPhoneNumber(s *string) c.Optional[user.PhoneNumber] {
	if s == nil {
		return c.Optional[user.PhoneNumber]{}
	}
	return c.NewOptional(user.PhoneNumber(*s), true)
}
