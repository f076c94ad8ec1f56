package http

import (
	"net/http"

	"github.com/vinylcrate/go-backend/internal/usecase"
	"github.com/vinylcrate/go-backend/pkg/logger"
)

type HealthHandler struct {
	healthUsecase usecase.HealthUC
	logger        logger.Logger
}

func NewHealthHandler(healthUsecase usecase.HealthUC, logger logger.Logger) *HealthHandler {
	return &HealthHandler{healthUsecase: healthUsecase, logger: logger}
}

type HealthResponse struct {
	Message string `json:"message"`
}

// healthCheck
//
//	@Summary		Проверка живости сервиса
//	@Description	Выполняет обращение к базе данных и возвращает её ответ
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/health-check [get]
func (h *HealthHandler) healthCheck(w http.ResponseWriter, r *http.Request) {
	res, err := h.healthUsecase.Check(r.Context())
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, HealthResponse{Message: res.Message})
}
