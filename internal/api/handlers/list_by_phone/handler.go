package list_by_phone

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingPhone       = "не указан телефон"
	msgCustomerNotFound   = "клиент с таким телефоном не найден"
)

// ListByPhoneRequest HTTP request model.
// Future=true возвращает только бронирования с началом в будущем.
type ListByPhoneRequest struct {
	Phone  string `json:"phone"`
	Future bool   `json:"future"`
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

// Handle POST /api/v1/reservation/by-phone
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ListByPhoneRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservation/by-phone - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Phone == "" {
		h.logger.Warn("POST /reservation/by-phone - missing phone")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	result, err := h.service.ListForPhone(r.Context(), req.Phone, req.Future)
	if err != nil {
		switch handlers.StatusForError(err) {
		case http.StatusNotFound:
			h.logger.Warn("POST /reservation/by-phone - customer not found: phone=%q", req.Phone)
			handlers.RespondNotFound(w, msgCustomerNotFound)
		default:
			h.logger.Error("POST /reservation/by-phone - failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromReservationModelList(result))
}
