package repository

import (
	"context"
	"fmt"

	"movie-store/internal/data/entity"
	"movie-store/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindAll(ctx context.Context, limit int64) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error)
	Update(ctx context.Context, id primitive.ObjectID, update *entity.MovieUpdate) (*entity.Movie, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type movieRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewMovieRepository(db *database.Mongo, log *zap.Logger) MovieRepository {
	return &movieRepository{
		col: db.Collection("movies"),
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	result, err := r.col.InsertOne(ctx, movie)
	if err != nil {
		r.log.Error("Failed to insert movie",
			zap.Error(err),
			zap.String("movie_name", movie.Name),
		)
		return fmt.Errorf("failed to create movie: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		movie.ID = oid
	}

	return nil
}

func (r *movieRepository) FindAll(ctx context.Context, limit int64) ([]*entity.Movie, error) {
	// No sort imposed, storage order
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Error("Failed to find movies",
			zap.Error(err),
			zap.Int64("limit", limit),
		)
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer cur.Close(ctx)

	var movies []*entity.Movie
	for cur.Next(ctx) {
		var movie entity.Movie
		if err := cur.Decode(&movie); err != nil {
			r.log.Error("Failed to decode movie document", zap.Error(err))
			return nil, fmt.Errorf("failed to decode movie: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := cur.Err(); err != nil {
		r.log.Error("Cursor iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate movies: %w", err)
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.Int64("limit", limit),
	)

	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error) {
	var movie entity.Movie
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.Hex()),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return &movie, nil
}

func (r *movieRepository) Update(ctx context.Context, id primitive.ObjectID, update *entity.MovieUpdate) (*entity.Movie, error) {
	set := bson.M{}
	if update.Name != nil {
		set["movie_name"] = *update.Name
	}
	if update.Rating != nil {
		set["movie_rating"] = *update.Rating
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if len(update.Image) > 0 {
		// image and contentType change together, single $set
		set["image"] = update.Image
		set["contentType"] = update.ContentType
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var movie entity.Movie
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&movie)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", id.Hex()),
		)
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	return &movie, nil
}

func (r *movieRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.Hex()),
		)
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("movie with id %s not found", id.Hex())
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id.Hex()))
	return nil
}
