package usecase

import (
	"time"

	"github.com/bulldogbars/barstock-api/internal/application/activity"
	"github.com/bulldogbars/barstock-api/internal/application/dto"
	"github.com/bulldogbars/barstock-api/internal/domain"
	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios. El alta vive en auth (Register).
type UserUseCase struct {
	userRepo repository.UserRepository
	recorder *activity.Recorder
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, recorder *activity.Recorder) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, recorder: recorder}
}

// List devuelve usuarios paginados.
func (uc *UserUseCase) List(page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.FromUser(u))
	}
	return out, nil
}

// Get devuelve un usuario. Un no-admin sólo puede leerse a sí mismo.
func (uc *UserUseCase) Get(id int64, actor dto.Actor) (*dto.UserResponse, error) {
	if !actor.IsAdmin() && actor.UserID != id {
		return nil, domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

// Update actualización parcial (sólo admin, lo garantiza el middleware).
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest, actor dto.Actor) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Role != nil {
		role := entity.Role(*in.Role)
		if !role.Valid() {
			return nil, domain.ErrInvalidInput
		}
		user.Role = role
	}
	if in.Location != nil {
		location := entity.Location(*in.Location)
		if *in.Location != "" && !location.Valid() {
			return nil, domain.ErrInvalidLocation
		}
		user.Location = location
	}
	if in.IsActive != nil {
		if !*in.IsActive && id == actor.UserID {
			return nil, domain.ErrConflict // un admin no puede desactivarse a sí mismo
		}
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, entity.ActivityUpdate, "user", &user.ID,
		"usuario "+user.Username+" actualizado", nil)
	resp := dto.FromUser(user)
	return &resp, nil
}

// Deactivate baja lógica de un usuario.
func (uc *UserUseCase) Deactivate(id int64, actor dto.Actor) error {
	if id == actor.UserID {
		return domain.ErrConflict
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := uc.userRepo.Deactivate(id); err != nil {
		return err
	}
	uc.recorder.Record(actor, entity.ActivityDelete, "user", &id,
		"usuario "+user.Username+" desactivado", nil)
	return nil
}
