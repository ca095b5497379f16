package usecase

import (
	"context"
	"fmt"
	"strconv"

	"movie-store/internal/data/entity"
	"movie-store/internal/data/repository"
	"movie-store/internal/dto/request"
	"movie-store/internal/dto/response"
	"movie-store/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, limit int64) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieDetailResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieCreateRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, limit int64) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx, limit)
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Int64("limit", limit),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	s.log.Info("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.Int64("limit", limit),
	)

	return movieResponses, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieDetailResponse, error) {
	id, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format",
			zap.String("movie_id", movieID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("invalid movie id: %w", err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	if movie == nil {
		return nil, fmt.Errorf("movie with id %s not found", movieID)
	}

	s.log.Info("Movie retrieved",
		zap.String("movie_id", movieID),
		zap.String("movie_name", movie.Name),
	)

	detail := response.MovieToDetailResponse(movie)
	return &detail, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieCreateRequest) (*response.MovieResponse, error) {
	// Validate before constructing the entity, no partial records
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if len(req.Image) == 0 {
		s.log.Warn("Create movie without image file")
		return nil, fmt.Errorf("validation failed: image file is required")
	}

	rating, err := strconv.ParseFloat(req.Rating, 64)
	if err != nil {
		s.log.Warn("Invalid movie rating",
			zap.String("movie_rating", req.Rating),
			zap.Error(err),
		)
		return nil, fmt.Errorf("invalid movie_rating %q: must be a number", req.Rating)
	}

	movie := &entity.Movie{
		Name:        req.Name,
		Rating:      rating,
		Description: req.Description,
		Image:       req.Image,
		ContentType: req.ContentType,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("movie_name", req.Name),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.Hex()),
		zap.String("movie_name", movie.Name),
		zap.Float64("movie_rating", movie.Rating),
		zap.Int("image_bytes", len(movie.Image)),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	id, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id: %w", err)
	}

	update := &entity.MovieUpdate{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		ContentType: req.ContentType,
	}

	if req.Rating != nil {
		rating, err := strconv.ParseFloat(*req.Rating, 64)
		if err != nil {
			s.log.Warn("Invalid movie rating",
				zap.String("movie_rating", *req.Rating),
				zap.Error(err),
			)
			return nil, fmt.Errorf("invalid movie_rating %q: must be a number", *req.Rating)
		}
		update.Rating = &rating
	}

	// Nothing supplied, return the record as it stands
	if update.IsEmpty() {
		movie, err := s.repo.Movie.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("find movie: %w", err)
		}
		if movie == nil {
			return nil, fmt.Errorf("movie with id %s not found", movieID)
		}
		movieResp := response.MovieToResponse(movie)
		return &movieResp, nil
	}

	movie, err := s.repo.Movie.Update(ctx, id, update)
	if err != nil {
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("update movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie with id %s not found", movieID)
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("movie_name", movie.Name),
		zap.Bool("image_replaced", len(req.Image) > 0),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie id: %w", err)
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		s.log.Warn("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return err
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}
