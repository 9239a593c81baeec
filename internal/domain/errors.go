package domain

import "errors"

// Виды ошибок, по которым HTTP-слой выбирает код ответа.
// Конкретная причина оборачивается через fmt.Errorf("...: %w", ...),
// проверка — через errors.Is.
var (
	// ErrValidation — отсутствует или пусто обязательное поле запроса.
	ErrValidation = errors.New("validation failed")

	// ErrStorage — операция с хранилищем не выполнилась.
	ErrStorage = errors.New("storage operation failed")

	// ErrTimeout — операция с хранилищем не уложилась в отведённое время.
	ErrTimeout = errors.New("storage operation timed out")

	// ErrDuplicateUsername — нарушение уникальности username при вставке.
	// Для LoginOrRegister это не ошибка, а проигранная гонка регистрации.
	ErrDuplicateUsername = errors.New("username already taken")
)
