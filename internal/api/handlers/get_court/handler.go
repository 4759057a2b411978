package get_court

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const (
	msgInvalidGlobalID   = "некорректный globalId"
	msgMissingIdentifier = "не указан ни globalId, ни имя корта"
	msgNotFound          = "корт не найден"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/court/get?globalId=...&name=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("globalId")
	name := r.URL.Query().Get("name")

	if rawID == "" && name == "" {
		h.logger.Warn("GET /court/get - missing identifier")
		handlers.RespondBadRequest(w, msgMissingIdentifier)
		return
	}

	globalID := uuid.Nil
	if rawID != "" {
		parsed, err := uuid.Parse(rawID)
		if err != nil {
			h.logger.Warn("GET /court/get - invalid globalId %q: %v", rawID, err)
			handlers.RespondBadRequest(w, msgInvalidGlobalID)
			return
		}
		globalID = parsed
	}

	result, err := h.service.GetByIDOrName(r.Context(), globalID, name)
	if err != nil {
		switch handlers.StatusForError(err) {
		case http.StatusNotFound:
			h.logger.Warn("GET /court/get - court not found: id=%s, name=%q", globalID, name)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("GET /court/get - failed to get court: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromCourtModel(result))
}
