package repository

import "github.com/bulldogbars/barstock-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	UpdateLastLogin(id int64) error
	UpdatePassword(id int64, passwordHash string) error
	List(limit, offset int) ([]*entity.User, error)
	// Deactivate baja lógica: marca is_active = false, nunca borra la fila.
	Deactivate(id int64) error
}
