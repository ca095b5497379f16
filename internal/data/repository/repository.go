package repository

import (
	"movie-store/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie MovieRepository
}

func NewRepository(db *database.Mongo, log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMovieRepository(db, log),
	}
}
