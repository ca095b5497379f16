package adaptor

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"movie-store/internal/dto/request"
	"movie-store/internal/usecase"
	"movie-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const defaultContentType = "application/octet-stream"

type MovieHandler struct {
	service   usecase.MovieService
	maxMemory int64
	log       *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, config *utils.Config, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service:   service,
		maxMemory: config.Upload.MaxMemoryMB << 20,
		log:       log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movie?limit=N
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 0)

	movies, err := h.service.GetMovies(r.Context(), int64(limit))
	if err != nil {
		h.handleServiceError(w, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// GetMovieByID handles GET /api/movie/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// CreateMovie handles POST /api/movie (multipart form)
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	image, contentType, err := h.readImageFile(r)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			utils.ResponseBadRequest(w, "Image file is required", nil)
			return
		}
		h.log.Error("Failed to read uploaded file", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to read uploaded file", err.Error())
		return
	}

	req := &request.MovieCreateRequest{
		Name:        r.FormValue("movie_name"),
		Rating:      r.FormValue("movie_rating"),
		Description: r.FormValue("description"),
		Image:       image,
		ContentType: contentType,
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// UpdateMovie handles PUT /api/movie/{id} (multipart form, partial)
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	var req request.MovieUpdateRequest

	// Only fields present in the form overwrite the record
	form := r.MultipartForm
	if values, ok := form.Value["movie_name"]; ok && len(values) > 0 {
		req.Name = &values[0]
	}
	if values, ok := form.Value["movie_rating"]; ok && len(values) > 0 {
		req.Rating = &values[0]
	}
	if values, ok := form.Value["description"]; ok && len(values) > 0 {
		req.Description = &values[0]
	}

	image, contentType, err := h.readImageFile(r)
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		h.log.Error("Failed to read uploaded file", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to read uploaded file", err.Error())
		return
	}
	if err == nil {
		req.Image = image
		req.ContentType = contentType
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// DeleteMovie handles DELETE /api/movie/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie "+movieID+" deleted successfully", nil)
}

// readImageFile extracts the uploaded image part. Returns
// http.ErrMissingFile when the form has no image field.
func (h *MovieHandler) readImageFile(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	return data, contentType, nil
}

// handleServiceError maps service errors to HTTP responses
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Failed to "+operation, errMsg)
	}
}
