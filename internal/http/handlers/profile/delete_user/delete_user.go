package deleteuser

import (
	"errors"
	"net/http"
	e "shopapi/internal/core/domain/errors"
	"shopapi/internal/core/domain/user"
	"shopapi/internal/core/services"
	deleteuser "shopapi/internal/core/services/delete_user"
	"shopapi/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[deleteuser.Input, deleteuser.Result]
}

func New(
	service services.Service[deleteuser.Input, deleteuser.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	_, err := h.service.Run(r.Context(), deleteuser.Input{})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rw.WriteHeader(http.StatusNoContent)
}
