package repo

import (
	"context"

	"gorm.io/gorm"

	"Filmoteka/internal/model"
)

// MovieRepository определяет контракт доступа к записям фильмотеки.
type MovieRepository interface {
	// Create сохраняет новую запись. При занятом title возвращает gorm.ErrDuplicatedKey.
	Create(ctx context.Context, m *model.Movie) error

	// GetByID возвращает запись вместе с создателем. Если нет — gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.Movie, error)

	// GetByTitle ищет запись по точному названию (для проверки уникальности).
	GetByTitle(ctx context.Context, title string) (*model.Movie, error)

	// ListAll возвращает все записи с подгруженными создателями. Без пагинации.
	ListAll(ctx context.Context) ([]model.Movie, error)

	// Update применяет частичное обновление по карте колонок.
	Update(ctx context.Context, id string, updates map[string]any) error

	// Delete удаляет запись по id.
	Delete(ctx context.Context, id string) error
}

type movieRepo struct {
	db *gorm.DB
}

// NewMovieRepository создаёт реализацию репозитория для Movie.
func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepo{db: db}
}

func (r *movieRepo) Create(ctx context.Context, m *model.Movie) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movieRepo) GetByID(ctx context.Context, id string) (*model.Movie, error) {
	var m model.Movie
	if err := r.db.WithContext(ctx).Preload("Creator").Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movieRepo) GetByTitle(ctx context.Context, title string) (*model.Movie, error) {
	var m model.Movie
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movieRepo) ListAll(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	if err := r.db.WithContext(ctx).Preload("Creator").Order("created_at desc").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	res := r.db.WithContext(ctx).Model(&model.Movie{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *movieRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Movie{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
