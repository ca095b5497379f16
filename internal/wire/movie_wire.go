package wire

import (
	"movie-store/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/api/movie", func(r chi.Router) {
		r.Post("/", movieHandler.CreateMovie)       // POST /api/movie
		r.Get("/", movieHandler.GetMovies)          // GET /api/movie?limit=N
		r.Get("/{id}", movieHandler.GetMovieByID)   // GET /api/movie/{id}
		r.Put("/{id}", movieHandler.UpdateMovie)    // PUT /api/movie/{id}
		r.Delete("/{id}", movieHandler.DeleteMovie) // DELETE /api/movie/{id}
	})
}
