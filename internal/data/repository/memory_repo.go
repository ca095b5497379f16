package repository

import (
	"context"
	"fmt"
	"sync"

	"movie-store/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryMovieRepository is a mutex-guarded in-memory MovieRepository.
// It mirrors the Mongo implementation's contract (nil for not found,
// error from Delete when nothing matched) and backs the tests.
type MemoryMovieRepository struct {
	mu     sync.RWMutex
	movies map[primitive.ObjectID]*entity.Movie
	order  []primitive.ObjectID
}

func NewMemoryMovieRepository() *MemoryMovieRepository {
	return &MemoryMovieRepository{
		movies: make(map[primitive.ObjectID]*entity.Movie),
	}
}

func (r *MemoryMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if movie.ID.IsZero() {
		movie.ID = primitive.NewObjectID()
	}

	stored := *movie
	r.movies[movie.ID] = &stored
	r.order = append(r.order, movie.ID)
	return nil
}

func (r *MemoryMovieRepository) FindAll(ctx context.Context, limit int64) ([]*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var movies []*entity.Movie
	for _, id := range r.order {
		movie, ok := r.movies[id]
		if !ok {
			continue
		}
		if limit > 0 && int64(len(movies)) >= limit {
			break
		}
		copied := *movie
		movies = append(movies, &copied)
	}
	return movies, nil
}

func (r *MemoryMovieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.movies[id]
	if !ok {
		return nil, nil
	}
	copied := *movie
	return &copied, nil
}

func (r *MemoryMovieRepository) Update(ctx context.Context, id primitive.ObjectID, update *entity.MovieUpdate) (*entity.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	movie, ok := r.movies[id]
	if !ok {
		return nil, nil
	}

	if update.Name != nil {
		movie.Name = *update.Name
	}
	if update.Rating != nil {
		movie.Rating = *update.Rating
	}
	if update.Description != nil {
		movie.Description = *update.Description
	}
	if len(update.Image) > 0 {
		movie.Image = update.Image
		movie.ContentType = update.ContentType
	}

	copied := *movie
	return &copied, nil
}

func (r *MemoryMovieRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[id]; !ok {
		return fmt.Errorf("movie with id %s not found", id.Hex())
	}
	delete(r.movies, id)
	return nil
}
