package entity

import "time"

// User representa un usuario del sistema.
// Location sólo aplica a roles de bar (bar_manager, barman); vacío para el resto.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Role         Role
	Location     Location // opcional: bar asignado
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName devuelve nombre y apellido concatenados.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
