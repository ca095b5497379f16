package response

import (
	"encoding/base64"
	"fmt"

	"movie-store/internal/data/entity"
)

// MovieResponse is used by create and list: Image holds the stored bytes
// as-is (JSON renders []byte as plain base64).
type MovieResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"movie_name"`
	Rating      float64 `json:"movie_rating"`
	Description string  `json:"description"`
	Image       []byte  `json:"image"`
	ContentType string  `json:"contentType"`
}

// MovieDetailResponse is used by read-one only: Image is a data URI
// combining contentType and the base64 payload. The asymmetry with
// MovieResponse is part of the contract.
type MovieDetailResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"movie_name"`
	Rating      float64 `json:"movie_rating"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	ContentType string  `json:"contentType"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.Hex(),
		Name:        movie.Name,
		Rating:      movie.Rating,
		Description: movie.Description,
		Image:       movie.Image,
		ContentType: movie.ContentType,
	}
}

func MovieToDetailResponse(movie *entity.Movie) MovieDetailResponse {
	dataURI := fmt.Sprintf("data:%s;base64,%s",
		movie.ContentType,
		base64.StdEncoding.EncodeToString(movie.Image),
	)

	return MovieDetailResponse{
		ID:          movie.ID.Hex(),
		Name:        movie.Name,
		Rating:      movie.Rating,
		Description: movie.Description,
		Image:       dataURI,
		ContentType: movie.ContentType,
	}
}
