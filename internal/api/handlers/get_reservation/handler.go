package get_reservation

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const (
	msgMissingGlobalID = "не указан globalId"
	msgInvalidGlobalID = "некорректный globalId"
	msgNotFound        = "бронирование не найдено"
)

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

// Handle GET /api/v1/reservation/get?globalId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("globalId")
	if rawID == "" {
		h.logger.Warn("GET /reservation/get - missing globalId")
		handlers.RespondBadRequest(w, msgMissingGlobalID)
		return
	}

	globalID, err := uuid.Parse(rawID)
	if err != nil {
		h.logger.Warn("GET /reservation/get - invalid globalId %q: %v", rawID, err)
		handlers.RespondBadRequest(w, msgInvalidGlobalID)
		return
	}

	result, err := h.service.GetByGlobalID(r.Context(), globalID)
	if err != nil {
		switch handlers.StatusForError(err) {
		case http.StatusNotFound:
			h.logger.Warn("GET /reservation/get - reservation not found: id=%s", globalID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("GET /reservation/get - failed to get reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromReservationModel(result))
}
