package model

import "time"

// User — зарегистрированный пользователь фильмотеки.
// Password хранит bcrypt-хеш и никогда не сериализуется наружу.
type User struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"` // всегда в нижнем регистре
	Password     string `gorm:"not null" json:"-"`
	ProfileImage string `json:"profile_image,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
