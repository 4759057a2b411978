package update_reservation

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPayload     = "некорректный globalId или формат времени"
	msgNotFound           = "бронирование не найдено"
	msgBadArgument        = "некорректные данные обновления: проверьте корт, тип игры, телефон и интервал"
	msgConflict           = "новый интервал пересекается с существующим бронированием"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservation/update
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservation/update - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("PUT /reservation/update - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch handlers.StatusForError(err) {
		case http.StatusNotFound:
			h.logger.Warn("PUT /reservation/update - reservation not found: id=%s", req.GlobalID)
			handlers.RespondNotFound(w, msgNotFound)
		case http.StatusBadRequest:
			h.logger.Warn("PUT /reservation/update - bad argument: %v", err)
			handlers.RespondBadRequest(w, msgBadArgument)
		case http.StatusConflict:
			h.logger.Warn("PUT /reservation/update - conflict: id=%s", req.GlobalID)
			handlers.RespondConflict(w, msgConflict)
		default:
			h.logger.Error("PUT /reservation/update - failed to update reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservation/update - reservation updated: id=%s", result.GlobalID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
