package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Типы контента.
const (
	KindMovie       = "movie"
	KindSeries      = "series"
	KindDocumentary = "documentary"
)

// Kinds — допустимые значения поля Kind.
var Kinds = []string{KindMovie, KindSeries, KindDocumentary}

// Genres — фиксированный набор допустимых жанров.
var Genres = []string{
	"Action",
	"Adventure",
	"Comedy",
	"Horror",
	"Romance",
	"Sci-Fi",
	"Thriller",
	"Other",
}

// GenreList хранится в БД как JSON-текст, чтобы не тянуть отдельную таблицу
// под многие-ко-многим на фиксированном перечислении.
type GenreList []string

// Value реализует driver.Valuer.
func (g GenreList) Value() (driver.Value, error) {
	if g == nil {
		g = GenreList{}
	}
	b, err := json.Marshal([]string(g))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan реализует sql.Scanner.
func (g *GenreList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*g = nil
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(g))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(g))
	default:
		return errors.New("unsupported type for GenreList")
	}
}

// Movie — запись фильмотеки. Принадлежит ровно одному пользователю (CreatedBy).
type Movie struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	Title       string    `gorm:"uniqueIndex;not null" json:"title"`
	Kind        string    `gorm:"not null" json:"type"`
	Genres      GenreList `gorm:"type:text;not null" json:"genres"`
	Director    string    `gorm:"not null" json:"director"`
	Budget      float64   `gorm:"not null" json:"budget"`
	Country     string    `gorm:"not null" json:"country"`
	Language    string    `gorm:"not null;default:English" json:"language"`
	Duration    int       `gorm:"not null" json:"duration"` // минуты
	ReleaseYear int       `gorm:"not null" json:"release_year"`
	Poster      string    `json:"poster,omitempty"`

	CreatedBy int64 `gorm:"not null;index" json:"created_by"` // ссылка на users.id
	Creator   *User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
