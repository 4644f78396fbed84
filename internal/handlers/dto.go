package handlers

import (
	"time"

	"Filmoteka/internal/model"
)

// UserView — представление пользователя без хеша пароля.
type UserView struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newUserView(u *model.User) UserView {
	return UserView{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// CreatorView — минимальная проекция создателя записи.
type CreatorView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MovieView — представление записи фильмотеки.
type MovieView struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Kind        string       `json:"type"`
	Genres      []string     `json:"genres"`
	Director    string       `json:"director"`
	Budget      float64      `json:"budget"`
	Country     string       `json:"country"`
	Language    string       `json:"language"`
	Duration    int          `json:"duration"`
	ReleaseYear int          `json:"release_year"`
	Poster      string       `json:"poster,omitempty"`
	Creator     *CreatorView `json:"creator,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func newMovieView(m *model.Movie) MovieView {
	v := MovieView{
		ID:          m.ID,
		Title:       m.Title,
		Kind:        m.Kind,
		Genres:      m.Genres,
		Director:    m.Director,
		Budget:      m.Budget,
		Country:     m.Country,
		Language:    m.Language,
		Duration:    m.Duration,
		ReleaseYear: m.ReleaseYear,
		Poster:      m.Poster,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Creator != nil {
		v.Creator = &CreatorView{ID: m.Creator.ID, Name: m.Creator.Name, Email: m.Creator.Email}
	}
	return v
}
