package usecase

import (
	"context"

	"github.com/vinylcrate/go-backend/pkg/e"
)

// HealthUseCase проверяет доступность хранилища.
type HealthUseCase struct {
	healthRepo HealthRepository
}

func NewHealthUC(healthRepo HealthRepository) *HealthUseCase {
	return &HealthUseCase{healthRepo: healthRepo}
}

func (h *HealthUseCase) Check(ctx context.Context) (*HealthRes, error) {
	const op = "HealthUseCase.Check"

	message, err := h.healthRepo.Check(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewHealthRes(message), nil
}
