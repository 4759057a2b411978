package create_court

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBadArgument        = "некорректные данные корта: проверьте имя и покрытие"
	msgSurfaceNotFound    = "покрытие не найдено"
	msgCourtExists        = "корт с таким именем уже существует"
)

// CreateCourtRequest HTTP request model
type CreateCourtRequest struct {
	Name    string `json:"name"`
	Surface string `json:"surface"`
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

// Handle POST /api/v1/court/create
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /court/create - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.Name, req.Surface)
	if err != nil {
		switch handlers.StatusForError(err) {
		case http.StatusBadRequest:
			h.logger.Warn("POST /court/create - bad argument: %v", err)
			handlers.RespondBadRequest(w, msgBadArgument)
		case http.StatusNotFound:
			h.logger.Warn("POST /court/create - surface not found: %q", req.Surface)
			handlers.RespondNotFound(w, msgSurfaceNotFound)
		case http.StatusConflict:
			h.logger.Warn("POST /court/create - court already exists: %q", req.Name)
			handlers.RespondConflict(w, msgCourtExists)
		default:
			h.logger.Error("POST /court/create - failed to create court: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /court/create - court created: id=%s, name=%q", result.GlobalID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromCourtModel(result))
}
