package list_by_court

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCourt       = "не указано имя корта"
	msgCourtNotFound      = "корт не найден"
)

// ListByCourtRequest HTTP request model
type ListByCourtRequest struct {
	Court string `json:"court"`
}

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservation/by-court
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ListByCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservation/by-court - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Court == "" {
		h.logger.Warn("POST /reservation/by-court - missing court name")
		handlers.RespondBadRequest(w, msgMissingCourt)
		return
	}

	result, err := h.service.ListForCourt(r.Context(), req.Court)
	if err != nil {
		switch handlers.StatusForError(err) {
		case http.StatusNotFound:
			h.logger.Warn("POST /reservation/by-court - court not found: %q", req.Court)
			handlers.RespondNotFound(w, msgCourtNotFound)
		default:
			h.logger.Error("POST /reservation/by-court - failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromReservationModelList(result))
}
