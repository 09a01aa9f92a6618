package resendverificationcode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	c "shopapi/internal/core/domain/common"
	e "shopapi/internal/core/domain/errors"
	ratelimiter "shopapi/internal/core/domain/rate_limiter"
	"shopapi/internal/core/domain/user"
	"shopapi/internal/core/services"
	resendverificationcode "shopapi/internal/core/services/resend_verification_code"
	"shopapi/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service    services.Service[resendverificationcode.Input, resendverificationcode.Result]
	isTestMode bool
}

func New(
	service services.Service[resendverificationcode.Input, resendverificationcode.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	Email string `json:"email"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
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
		resendverificationcode.Input{Email: c.NewEmail(input.Email)},
	)

	var errThrottled *user.VerificationCodeThrottledError
	if errors.As(err, &errThrottled) {
		response.RenderThrottled(
			rw,
			fmt.Sprintf(
				"please wait %d seconds before requesting a new verification code",
				errThrottled.WaitSeconds,
			),
			errThrottled.WaitSeconds,
		)
		return
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderError(rw, "user does not exist", http.StatusUnprocessableEntity)
		return
	}
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	if h.isTestMode {
		rw.Header().Set("x-test-verification-code", result.Code)
	}
	response.Render(rw, struct{}{}, http.StatusOK)
}
