package updateuser

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "shopapi/internal/core/domain/common"
	e "shopapi/internal/core/domain/errors"
	"shopapi/internal/core/domain/user"
	"shopapi/internal/core/services"
	service "shopapi/internal/core/services/update_user"
	"shopapi/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

// A null value clears the field, an absent key leaves it untouched.
type Input struct {
	PhoneNumber *string `json:"phone_number"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`

	rawFields map[string]json.RawMessage
}

type Result struct {
	User response.User `json:"user"`
}

func (i *Input) FromJSON(r io.Reader) error {
	raw := make(map[string]json.RawMessage)
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return err
	}
	i.rawFields = raw
	for key, value := range raw {
		var target **string
		switch key {
		case "phone_number":
			target = &i.PhoneNumber
		case "first_name":
			target = &i.FirstName
		case "last_name":
			target = &i.LastName
		default:
			continue
		}
		if err := json.Unmarshal(value, target); err != nil {
			return err
		}
	}
	return nil
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.PhoneNumber, validation.Length(0, 32)),
		validation.Field(&i.FirstName, validation.Length(0, 64)),
		validation.Field(&i.LastName, validation.Length(0, 64)),
	)
}

func (i Input) has(key string) bool {
	_, ok := i.rawFields[key]
	return ok
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
		service.Input{
			DoPhoneNumberUpdate: input.has("phone_number"),
			PhoneNumber:         optionalPhoneNumber(input.PhoneNumber),
			DoFirstNameUpdate:   input.has("first_name"),
			FirstName:           optionalString(input.FirstName),
			DoLastNameUpdate:    input.has("last_name"),
			LastName:            optionalString(input.LastName),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	user := response.User{}
	user.FromDomainUser(result.User)
	response.Render(rw, Result{User: user}, http.StatusOK)
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
