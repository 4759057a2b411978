package create_reservation

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается YYYY-MM-DD HH:MM:SS"
	msgBadArgument        = "некорректные данные бронирования: проверьте корт, тип игры, телефон и интервал"
	msgConflict           = "интервал пересекается с существующим бронированием"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservation/create
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservation/create - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservation/create - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch handlers.StatusForError(err) {
		case http.StatusBadRequest:
			h.logger.Warn("POST /reservation/create - bad argument: %v", err)
			handlers.RespondBadRequest(w, msgBadArgument)
		case http.StatusConflict:
			h.logger.Warn("POST /reservation/create - conflict: court=%q", req.Court)
			handlers.RespondConflict(w, msgConflict)
		default:
			h.logger.Error("POST /reservation/create - failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservation/create - reservation created: id=%s, court=%q", result.GlobalID, result.CourtName)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
