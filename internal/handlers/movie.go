package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Filmoteka/internal/config"
	"Filmoteka/internal/middleware"
	"Filmoteka/internal/service"
)

// MovieHandler обслуживает маршруты /movies/*.
type MovieHandler struct {
	Movies *service.MovieService
	Logger *zap.SugaredLogger
	Config *config.Config
}

func NewMovieHandler(movies *service.MovieService, logger *zap.SugaredLogger, cfg *config.Config) *MovieHandler {
	return &MovieHandler{Movies: movies, Logger: logger, Config: cfg}
}

type createMovieRequest struct {
	Title       string   `json:"title"`
	Kind        string   `json:"type"`
	Genres      []string `json:"genres"`
	Director    string   `json:"director"`
	Budget      float64  `json:"budget"`
	Country     string   `json:"country"`
	Language    string   `json:"language"`
	Duration    int      `json:"duration"`
	ReleaseYear int      `json:"release_year"`
	Poster      string   `json:"poster"`
}

// Create — POST /movies/create.
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeFail(w, http.StatusUnauthorized, "no token provided")
		return
	}

	var req createMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	movie, err := h.Movies.Create(r.Context(), userID, service.MovieInput{
		Title:       req.Title,
		Kind:        req.Kind,
		Genres:      req.Genres,
		Director:    req.Director,
		Budget:      req.Budget,
		Country:     req.Country,
		Language:    req.Language,
		Duration:    req.Duration,
		ReleaseYear: req.ReleaseYear,
		Poster:      req.Poster,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w, http.StatusCreated, "movie created successfully", newMovieView(movie))
}

// List — GET /movies. Все записи с проекцией создателя.
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.Movies.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	views := make([]MovieView, 0, len(movies))
	for i := range movies {
		views = append(views, newMovieView(&movies[i]))
	}
	writeOK(w, http.StatusOK, "movies fetched successfully", views)
}

// Get — GET /movies/{id}.
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	movie, err := h.Movies.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w, http.StatusOK, "movie fetched successfully", newMovieView(movie))
}

type updateMovieRequest struct {
	Title       *string   `json:"title,omitempty"`
	Kind        *string   `json:"type,omitempty"`
	Genres      *[]string `json:"genres,omitempty"`
	Director    *string   `json:"director,omitempty"`
	Budget      *float64  `json:"budget,omitempty"`
	Country     *string   `json:"country,omitempty"`
	Language    *string   `json:"language,omitempty"`
	Duration    *int      `json:"duration,omitempty"`
	ReleaseYear *int      `json:"release_year,omitempty"`
	Poster      *string   `json:"poster,omitempty"`
}

// Update — PUT /movies/{id}. Непереданные поля сохраняют прежние значения.
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeFail(w, http.StatusUnauthorized, "no token provided")
		return
	}

	var req updateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	movie, err := h.Movies.Update(r.Context(), chi.URLParam(r, "id"), userID, service.MovieUpdate{
		Title:       req.Title,
		Kind:        req.Kind,
		Genres:      req.Genres,
		Director:    req.Director,
		Budget:      req.Budget,
		Country:     req.Country,
		Language:    req.Language,
		Duration:    req.Duration,
		ReleaseYear: req.ReleaseYear,
		Poster:      req.Poster,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w, http.StatusOK, "movie updated successfully", newMovieView(movie))
}

// Delete — DELETE /movies/{id}. Удаление постера из хранилища best-effort.
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeFail(w, http.StatusUnauthorized, "no token provided")
		return
	}

	if err := h.Movies.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w, http.StatusOK, "movie deleted successfully", nil)
}

// UploadPoster — POST/PUT /movies/upload-poster/{id}. Multipart-поле "image".
func (h *MovieHandler) UploadPoster(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeFail(w, http.StatusUnauthorized, "no token provided")
		return
	}

	maxBytes := int64(h.Config.PosterMaxSizeMB) * 1024 * 1024
	// запас на multipart-обвязку
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1024*1024)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeFail(w, http.StatusRequestEntityTooLarge, "poster is too large")
			return
		}
		writeFail(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeFail(w, http.StatusBadRequest, "no image uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeFail(w, http.StatusRequestEntityTooLarge, "poster is too large")
			return
		}
		writeFail(w, http.StatusBadRequest, "failed to read image")
		return
	}
	if int64(len(data)) > maxBytes {
		writeFail(w, http.StatusRequestEntityTooLarge, "poster is too large")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	url, err := h.Movies.AttachPoster(r.Context(), chi.URLParam(r, "id"), userID, data, contentType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w, http.StatusOK, "movie poster uploaded successfully", map[string]any{
		"image_url": url,
	})
}

// DeletePoster — DELETE /movies/delete-poster/{id}.
func (h *MovieHandler) DeletePoster(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeFail(w, http.StatusUnauthorized, "no token provided")
		return
	}

	if err := h.Movies.RemovePoster(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w, http.StatusOK, "movie poster deleted successfully", nil)
}
