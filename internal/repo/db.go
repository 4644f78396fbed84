package repo

import (
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"Filmoteka/internal/model"
)

// InitDB открывает подключение к БД и накатывает миграции моделей.
// Диалект выбирается по DSN: postgres:// — PostgreSQL, всё остальное
// трактуется как путь к файлу SQLite (cgo-free драйвер modernc).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = postgres.Open(dsn)
	} else {
		if dsn == "" {
			dsn = "filmoteka.db"
		}
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	// Записи фильмов переживают удаление владельца, поэтому FK
	// movies.created_by -> users.id в схеме не создаётся.
	db, err := gorm.Open(dial, &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.Movie{}); err != nil {
		return nil, err
	}
	return db, nil
}
