package usecase

import (
	"context"

	"go-portfolio-backend/pkg/database"
)

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, error)
}

type healthUsecase struct {
	db database.Gateway
}

func NewHealthUsecase(db database.Gateway) HealthUsecase {
	return &healthUsecase{db: db}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, error) {
	status := map[string]string{
		"status":   "ok",
		"database": string(u.db.Dialect()),
	}
	if err := u.db.Ping(ctx); err != nil {
		status["status"] = "degraded"
		return status, err
	}
	return status, nil
}
