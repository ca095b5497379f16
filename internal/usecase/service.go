package usecase

import (
	"movie-store/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie MovieService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie: NewMovieService(repo, log),
	}
}
