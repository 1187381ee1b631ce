package repository

import "errors"

var (
	// ErrProjectNotFound возвращается, если проект не найден в БД.
	ErrProjectNotFound = errors.New("project not found")

	// ErrRequirementsNotFound возвращается, если у проекта нет требований к команде.
	ErrRequirementsNotFound = errors.New("team requirements not found")

	// ErrMemberNotFound возвращается, если пользователь не состоит в команде проекта.
	ErrMemberNotFound = errors.New("team member not found")

	// ErrMemberExists возвращается при повторном вступлении в команду.
	ErrMemberExists = errors.New("team member already exists")

	// ErrUserNotFound возвращается при ссылке на несуществующего пользователя.
	ErrUserNotFound = errors.New("user not found")

	// ErrProfileNotFound возвращается, если у пользователя нет профиля.
	ErrProfileNotFound = errors.New("profile not found")
)

// Коды ошибок PostgreSQL, которые мы различаем.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)
