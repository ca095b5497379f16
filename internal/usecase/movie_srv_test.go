package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"movie-store/internal/data/repository"
	"movie-store/internal/dto/request"

	"go.uber.org/zap"
)

func newTestService() (MovieService, *repository.MemoryMovieRepository) {
	memRepo := repository.NewMemoryMovieRepository()
	repos := &repository.Repository{Movie: memRepo}
	return NewMovieService(repos, zap.NewNop()), memRepo
}

func validCreateRequest() *request.MovieCreateRequest {
	return &request.MovieCreateRequest{
		Name:        "Blade Runner",
		Rating:      "8.5",
		Description: "A blade runner must pursue and terminate four replicants.",
		Image:       []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
		ContentType: "image/png",
	}
}

func TestCreateMovie(t *testing.T) {
	svc, _ := newTestService()
	req := validCreateRequest()

	movie, err := svc.CreateMovie(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}

	if movie.ID == "" {
		t.Error("expected a generated identifier")
	}
	if movie.Name != req.Name {
		t.Errorf("movie_name = %q, want %q", movie.Name, req.Name)
	}
	if movie.Rating != 8.5 {
		t.Errorf("movie_rating = %v, want 8.5", movie.Rating)
	}
	if movie.Description != req.Description {
		t.Errorf("description = %q, want %q", movie.Description, req.Description)
	}
	if !bytes.Equal(movie.Image, req.Image) {
		t.Error("stored image bytes differ from upload")
	}
	if movie.ContentType != "image/png" {
		t.Errorf("contentType = %q, want image/png", movie.ContentType)
	}
}

func TestCreateMovieMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*request.MovieCreateRequest)
	}{
		{"missing name", func(r *request.MovieCreateRequest) { r.Name = "" }},
		{"missing rating", func(r *request.MovieCreateRequest) { r.Rating = "" }},
		{"missing description", func(r *request.MovieCreateRequest) { r.Description = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, memRepo := newTestService()
			req := validCreateRequest()
			tt.mutate(req)

			if _, err := svc.CreateMovie(context.Background(), req); err == nil {
				t.Fatal("expected validation error")
			} else if !strings.Contains(err.Error(), "validation failed") {
				t.Errorf("unexpected error: %v", err)
			}

			movies, _ := memRepo.FindAll(context.Background(), 0)
			if len(movies) != 0 {
				t.Error("no record should survive a failed creation")
			}
		})
	}
}

func TestCreateMovieNonNumericRating(t *testing.T) {
	svc, memRepo := newTestService()
	req := validCreateRequest()
	req.Rating = "abc"

	if _, err := svc.CreateMovie(context.Background(), req); err == nil {
		t.Fatal("expected error for non-numeric rating")
	} else if !strings.Contains(err.Error(), "invalid movie_rating") {
		t.Errorf("unexpected error: %v", err)
	}

	movies, _ := memRepo.FindAll(context.Background(), 0)
	if len(movies) != 0 {
		t.Error("no record should survive a failed creation")
	}
}

func TestCreateMovieMissingImage(t *testing.T) {
	svc, memRepo := newTestService()
	req := validCreateRequest()
	req.Image = nil

	if _, err := svc.CreateMovie(context.Background(), req); err == nil {
		t.Fatal("expected error for missing image")
	} else if !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("unexpected error: %v", err)
	}

	movies, _ := memRepo.FindAll(context.Background(), 0)
	if len(movies) != 0 {
		t.Error("no record should survive a failed creation")
	}
}

func TestGetMovieByIDDataURI(t *testing.T) {
	svc, _ := newTestService()
	req := validCreateRequest()

	created, err := svc.CreateMovie(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}

	detail, err := svc.GetMovieByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetMovieByID failed: %v", err)
	}

	prefix := "data:image/png;base64,"
	if !strings.HasPrefix(detail.Image, prefix) {
		t.Fatalf("image = %q, want %q prefix", detail.Image, prefix)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(detail.Image, prefix))
	if err != nil {
		t.Fatalf("data URI payload is not valid base64: %v", err)
	}
	if !bytes.Equal(decoded, req.Image) {
		t.Error("data URI payload does not round-trip to the uploaded bytes")
	}
}

func TestGetMovieByIDNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetMovieByID(context.Background(), "64b5f0c8a2f4e1d3b4a5c6d7")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestGetMovieByIDInvalidID(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetMovieByID(context.Background(), "not-a-hex-id")
	if err == nil || !strings.Contains(err.Error(), "invalid movie id") {
		t.Errorf("expected invalid id error, got %v", err)
	}
}

func TestGetMoviesLimit(t *testing.T) {
	svc, _ := newTestService()

	for i := 0; i < 5; i++ {
		if _, err := svc.CreateMovie(context.Background(), validCreateRequest()); err != nil {
			t.Fatalf("CreateMovie failed: %v", err)
		}
	}

	movies, err := svc.GetMovies(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetMovies failed: %v", err)
	}
	if len(movies) != 2 {
		t.Errorf("got %d movies, want 2", len(movies))
	}

	all, err := svc.GetMovies(context.Background(), 0)
	if err != nil {
		t.Fatalf("GetMovies failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("got %d movies, want 5", len(all))
	}
}

func TestUpdateMovieDescriptionOnly(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateMovie(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}

	newDesc := "Director's cut."
	updated, err := svc.UpdateMovie(context.Background(), created.ID, &request.MovieUpdateRequest{
		Description: &newDesc,
	})
	if err != nil {
		t.Fatalf("UpdateMovie failed: %v", err)
	}

	if updated.Description != newDesc {
		t.Errorf("description = %q, want %q", updated.Description, newDesc)
	}
	if updated.Name != created.Name {
		t.Error("name should be untouched")
	}
	if !bytes.Equal(updated.Image, created.Image) {
		t.Error("image should be untouched")
	}
	if updated.ContentType != created.ContentType {
		t.Error("contentType should be untouched")
	}
}

func TestUpdateMovieReplacesImage(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateMovie(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}

	newImage := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	updated, err := svc.UpdateMovie(context.Background(), created.ID, &request.MovieUpdateRequest{
		Image:       newImage,
		ContentType: "image/jpeg",
	})
	if err != nil {
		t.Fatalf("UpdateMovie failed: %v", err)
	}

	if !bytes.Equal(updated.Image, newImage) {
		t.Error("image bytes should be replaced")
	}
	if updated.ContentType != "image/jpeg" {
		t.Errorf("contentType = %q, want image/jpeg", updated.ContentType)
	}
}

func TestUpdateMovieNotFound(t *testing.T) {
	svc, _ := newTestService()

	name := "Ghost"
	_, err := svc.UpdateMovie(context.Background(), "64b5f0c8a2f4e1d3b4a5c6d7", &request.MovieUpdateRequest{
		Name: &name,
	})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestDeleteMovieTwice(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateMovie(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("CreateMovie failed: %v", err)
	}

	if err := svc.DeleteMovie(context.Background(), created.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}

	err = svc.DeleteMovie(context.Background(), created.ID)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("second delete should report not found, got %v", err)
	}
}
