package delete_court

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidGlobalID    = "некорректный globalId"
	msgMissingIdentifier  = "не указан ни globalId, ни имя корта"
	msgNotFound           = "корт не найден"
	msgCourtInUse         = "по корту есть бронирования, удаление запрещено"
)

// DeleteCourtRequest HTTP request model.
// Корт идентифицируется по globalId или по имени.
type DeleteCourtRequest struct {
	GlobalID string `json:"globalId,omitempty"`
	Name     string `json:"name,omitempty"`
}

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

// Handle DELETE /api/v1/court/delete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeleteCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /court/delete - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.GlobalID == "" && req.Name == "" {
		h.logger.Warn("DELETE /court/delete - missing identifier")
		handlers.RespondBadRequest(w, msgMissingIdentifier)
		return
	}

	globalID := uuid.Nil
	if req.GlobalID != "" {
		parsed, err := uuid.Parse(req.GlobalID)
		if err != nil {
			h.logger.Warn("DELETE /court/delete - invalid globalId %q: %v", req.GlobalID, err)
			handlers.RespondBadRequest(w, msgInvalidGlobalID)
			return
		}
		globalID = parsed
	}

	if err := h.service.Delete(r.Context(), globalID, req.Name); err != nil {
		switch handlers.StatusForError(err) {
		case http.StatusNotFound:
			h.logger.Warn("DELETE /court/delete - court not found: id=%s, name=%q", globalID, req.Name)
			handlers.RespondNotFound(w, msgNotFound)
		case http.StatusConflict:
			h.logger.Warn("DELETE /court/delete - court in use: id=%s, name=%q", globalID, req.Name)
			handlers.RespondConflict(w, msgCourtInUse)
		default:
			h.logger.Error("DELETE /court/delete - failed to delete court: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /court/delete - court deleted: id=%s, name=%q", globalID, req.Name)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
