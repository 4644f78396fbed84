package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"Filmoteka/internal/model"
	"Filmoteka/internal/repo"
	"Filmoteka/internal/storage"
)

// MovieService инкапсулирует бизнес-логику записей фильмотеки:
// валидацию, проверку владельца и работу с хранилищем постеров.
type MovieService struct {
	movies  repo.MovieRepository
	posters storage.PosterStore
	logger  *zap.SugaredLogger
}

func NewMovieService(movies repo.MovieRepository, posters storage.PosterStore, logger *zap.SugaredLogger) *MovieService {
	return &MovieService{movies: movies, posters: posters, logger: logger}
}

// MovieInput — поля создания записи.
type MovieInput struct {
	Title       string
	Kind        string
	Genres      []string
	Director    string
	Budget      float64
	Country     string
	Language    string
	Duration    int
	ReleaseYear int
	Poster      string
}

// MovieUpdate — частичное обновление: nil-поля не трогаются.
type MovieUpdate struct {
	Title       *string
	Kind        *string
	Genres      *[]string
	Director    *string
	Budget      *float64
	Country     *string
	Language    *string
	Duration    *int
	ReleaseYear *int
	Poster      *string
}

// validateMovie собирает ВСЕ нарушенные ограничения записи, не останавливаясь
// на первом.
func validateMovie(m *model.Movie) []string {
	var violations []string

	// длина в символах, не в байтах
	titleLen := utf8.RuneCountInString(strings.TrimSpace(m.Title))
	if titleLen < 2 || titleLen > 100 {
		violations = append(violations, "title must be between 2 and 100 characters")
	}

	validKind := false
	for _, k := range model.Kinds {
		if m.Kind == k {
			validKind = true
			break
		}
	}
	if !validKind {
		violations = append(violations, fmt.Sprintf("type must be one of: %s", strings.Join(model.Kinds, ", ")))
	}

	if len(m.Genres) == 0 {
		violations = append(violations, "at least one genre is required")
	}
	for _, g := range m.Genres {
		known := false
		for _, allowed := range model.Genres {
			if g == allowed {
				known = true
				break
			}
		}
		if !known {
			violations = append(violations, fmt.Sprintf("unknown genre: %s", g))
		}
	}

	if strings.TrimSpace(m.Director) == "" {
		violations = append(violations, "director is required")
	}
	if m.Budget <= 0 {
		violations = append(violations, "budget must be a positive number")
	}
	if strings.TrimSpace(m.Country) == "" {
		violations = append(violations, "country is required")
	}
	if m.Duration <= 0 {
		violations = append(violations, "duration must be at least 1 minute")
	}
	if m.ReleaseYear > time.Now().Year() {
		violations = append(violations, "release year cannot be in the future")
	}
	if m.ReleaseYear <= 0 {
		violations = append(violations, "release year is required")
	}

	return violations
}

// Create валидирует и сохраняет новую запись от имени владельца.
func (s *MovieService) Create(ctx context.Context, ownerID int64, in MovieInput) (*model.Movie, error) {
	m := &model.Movie{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Kind:        in.Kind,
		Genres:      model.GenreList(in.Genres),
		Director:    strings.TrimSpace(in.Director),
		Budget:      in.Budget,
		Country:     strings.TrimSpace(in.Country),
		Language:    strings.TrimSpace(in.Language),
		Duration:    in.Duration,
		ReleaseYear: in.ReleaseYear,
		Poster:      in.Poster,
		CreatedBy:   ownerID,
	}
	if m.Language == "" {
		m.Language = "English"
	}

	if err := newValidationError(validateMovie(m)); err != nil {
		return nil, err
	}

	if _, err := s.movies.GetByTitle(ctx, m.Title); err == nil {
		return nil, ErrTitleTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.movies.Create(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTitleTaken
		}
		return nil, err
	}
	return s.Get(ctx, m.ID)
}

// Get возвращает запись с данными создателя.
func (s *MovieService) Get(ctx context.Context, id string) (*model.Movie, error) {
	m, err := s.movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// List возвращает все записи. Пагинации нет — контракт исходного API.
func (s *MovieService) List(ctx context.Context) ([]model.Movie, error) {
	return s.movies.ListAll(ctx)
}

// ownedMovie достаёт запись и проверяет, что её создал requesterID.
func (s *MovieService) ownedMovie(ctx context.Context, id string, requesterID int64) (*model.Movie, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.CreatedBy != requesterID {
		return nil, ErrForbidden
	}
	return m, nil
}

// Update применяет частичное обновление к собственной записи.
// Результат перевалидируется целиком.
func (s *MovieService) Update(ctx context.Context, id string, requesterID int64, in MovieUpdate) (*model.Movie, error) {
	m, err := s.ownedMovie(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Title != nil {
		m.Title = strings.TrimSpace(*in.Title)
		updates["title"] = m.Title
	}
	if in.Kind != nil {
		m.Kind = *in.Kind
		updates["kind"] = m.Kind
	}
	if in.Genres != nil {
		m.Genres = model.GenreList(*in.Genres)
		updates["genres"] = m.Genres
	}
	if in.Director != nil {
		m.Director = strings.TrimSpace(*in.Director)
		updates["director"] = m.Director
	}
	if in.Budget != nil {
		m.Budget = *in.Budget
		updates["budget"] = m.Budget
	}
	if in.Country != nil {
		m.Country = strings.TrimSpace(*in.Country)
		updates["country"] = m.Country
	}
	if in.Language != nil {
		m.Language = strings.TrimSpace(*in.Language)
		updates["language"] = m.Language
	}
	if in.Duration != nil {
		m.Duration = *in.Duration
		updates["duration"] = m.Duration
	}
	if in.ReleaseYear != nil {
		m.ReleaseYear = *in.ReleaseYear
		updates["release_year"] = m.ReleaseYear
	}
	if in.Poster != nil {
		m.Poster = *in.Poster
		updates["poster"] = m.Poster
	}
	if len(updates) == 0 {
		return m, nil
	}

	if err := newValidationError(validateMovie(m)); err != nil {
		return nil, err
	}

	if in.Title != nil {
		if existing, err := s.movies.GetByTitle(ctx, m.Title); err == nil && existing.ID != id {
			return nil, ErrTitleTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if err := s.movies.Update(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTitleTaken
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete удаляет собственную запись. Если у записи был постер, делается
// ровно одна попытка удалить объект из хранилища; её неудача логируется
// и не мешает удалению записи.
func (s *MovieService) Delete(ctx context.Context, id string, requesterID int64) error {
	m, err := s.ownedMovie(ctx, id, requesterID)
	if err != nil {
		return err
	}

	if m.Poster != "" {
		if err := s.posters.Delete(ctx, m.Poster); err != nil {
			s.logger.Warnw("failed to delete movie poster", "movie_id", id, "url", m.Poster, "error", err)
		}
	}

	if err := s.movies.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// AttachPoster загружает постер в хранилище и привязывает его к записи.
// Старый объект удаляется best-effort уже после сохранения нового URL.
func (s *MovieService) AttachPoster(ctx context.Context, id string, requesterID int64, data []byte, contentType string) (string, error) {
	m, err := s.ownedMovie(ctx, id, requesterID)
	if err != nil {
		return "", err
	}

	url, err := s.posters.Store(ctx, data, contentType)
	if err != nil {
		return "", err
	}

	oldURL := m.Poster
	if err := s.movies.Update(ctx, id, map[string]any{"poster": url}); err != nil {
		return "", err
	}

	if oldURL != "" {
		if err := s.posters.Delete(ctx, oldURL); err != nil {
			s.logger.Warnw("failed to delete old poster", "movie_id", id, "url", oldURL, "error", err)
		}
	}
	return url, nil
}

// RemovePoster отвязывает постер от записи и best-effort удаляет объект.
func (s *MovieService) RemovePoster(ctx context.Context, id string, requesterID int64) error {
	m, err := s.ownedMovie(ctx, id, requesterID)
	if err != nil {
		return err
	}

	if m.Poster != "" {
		if err := s.posters.Delete(ctx, m.Poster); err != nil {
			s.logger.Warnw("failed to delete poster", "movie_id", id, "url", m.Poster, "error", err)
		}
	}
	return s.movies.Update(ctx, id, map[string]any{"poster": ""})
}
