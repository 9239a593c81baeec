package domain

import "time"

// User представляет модель пользователя в системе.
// Соответствует таблице 'users' в базе данных.
// Пароль хранится как есть и при входе не проверяется — так требует
// исходная постановка; для реального использования здесь нужен хэш.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
