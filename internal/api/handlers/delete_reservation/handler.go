package delete_reservation

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidGlobalID    = "некорректный globalId"
	msgNotFound           = "бронирование не найдено"
)

// DeleteReservationRequest HTTP request model
type DeleteReservationRequest struct {
	GlobalID string `json:"globalId"`
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

// Handle DELETE /api/v1/reservation/delete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeleteReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /reservation/delete - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	globalID, err := uuid.Parse(req.GlobalID)
	if err != nil {
		h.logger.Warn("DELETE /reservation/delete - invalid globalId %q: %v", req.GlobalID, err)
		handlers.RespondBadRequest(w, msgInvalidGlobalID)
		return
	}

	if err := h.service.Delete(r.Context(), globalID); err != nil {
		switch handlers.StatusForError(err) {
		case http.StatusNotFound:
			h.logger.Warn("DELETE /reservation/delete - reservation not found: id=%s", globalID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("DELETE /reservation/delete - failed to delete reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservation/delete - reservation deleted: id=%s", globalID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
