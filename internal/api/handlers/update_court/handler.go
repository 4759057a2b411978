package update_court

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidGlobalID    = "некорректный globalId"
	msgNotFound           = "корт или покрытие не найдены"
	msgBadArgument        = "некорректные данные корта: проверьте имя и покрытие"
	msgCourtExists        = "корт с таким именем уже существует"
)

// UpdateCourtRequest HTTP request model.
// Name и Surface опциональны: отсутствие поля означает "не менять".
type UpdateCourtRequest struct {
	GlobalID string  `json:"globalId"`
	Name     *string `json:"name,omitempty"`
	Surface  *string `json:"surface,omitempty"`
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

// Handle PUT /api/v1/court/update
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /court/update - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	globalID, err := uuid.Parse(req.GlobalID)
	if err != nil {
		h.logger.Warn("PUT /court/update - invalid globalId %q: %v", req.GlobalID, err)
		handlers.RespondBadRequest(w, msgInvalidGlobalID)
		return
	}

	result, err := h.service.Update(r.Context(), globalID, req.Name, req.Surface)
	if err != nil {
		switch handlers.StatusForError(err) {
		case http.StatusNotFound:
			h.logger.Warn("PUT /court/update - not found: id=%s", globalID)
			handlers.RespondNotFound(w, msgNotFound)
		case http.StatusBadRequest:
			h.logger.Warn("PUT /court/update - bad argument: %v", err)
			handlers.RespondBadRequest(w, msgBadArgument)
		case http.StatusConflict:
			h.logger.Warn("PUT /court/update - name conflict: id=%s", globalID)
			handlers.RespondConflict(w, msgCourtExists)
		default:
			h.logger.Error("PUT /court/update - failed to update court: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /court/update - court updated: id=%s, name=%q", result.GlobalID, result.Name)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromCourtModel(result))
}
