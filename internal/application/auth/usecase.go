package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bulldogbars/barstock-api/internal/application/activity"
	"github.com/bulldogbars/barstock-api/internal/application/dto"
	"github.com/bulldogbars/barstock-api/internal/domain"
	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
	"github.com/bulldogbars/barstock-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, registro y cambio de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	recorder *activity.Recorder
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, recorder *activity.Recorder, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, recorder: recorder, jwtCfg: jwtCfg}
}

// Login verifica username/password, rechaza usuarios desactivados, actualiza
// lastLogin, genera el JWT y registra la actividad.
func (uc *AuthUseCase) Login(in dto.LoginRequest, ip string) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	if err := uc.userRepo.UpdateLastLogin(user.ID); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), string(user.Location), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	actor := dto.Actor{UserID: user.ID, Role: user.Role, Location: user.Location, IP: ip}
	uc.recorder.Record(actor, entity.ActivityLogin, "user", &user.ID, "inicio de sesión", nil)

	return &dto.LoginResponse{User: dto.FromUser(user), Token: token}, nil
}

// Logout sólo registra la actividad; el token JWT expira solo.
func (uc *AuthUseCase) Logout(actor dto.Actor) {
	uc.recorder.Record(actor, entity.ActivityLogout, "user", &actor.UserID, "cierre de sesión", nil)
}

// Register crea un usuario con password hasheado (bcrypt). Sólo lo invoca un
// admin (lo garantiza el middleware); username y email deben ser únicos.
func (uc *AuthUseCase) Register(in dto.RegisterRequest, actor dto.Actor) (*dto.UserResponse, error) {
	role := entity.Role(in.Role)
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}
	location := entity.Location(in.Location)
	if in.Location != "" && !location.Valid() {
		return nil, domain.ErrInvalidLocation
	}

	if existing, err := uc.userRepo.GetByUsername(in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, err := uc.userRepo.GetByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		Location:     location,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	uc.recorder.Record(actor, entity.ActivityCreate, "user", &user.ID,
		"usuario "+user.Username+" creado", nil)
	resp := dto.FromUser(user)
	return &resp, nil
}

// ChangePassword cambia la contraseña del propio actor tras verificar la actual.
func (uc *AuthUseCase) ChangePassword(in dto.ChangePasswordRequest, actor dto.Actor) error {
	user, err := uc.userRepo.GetByID(actor.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.userRepo.UpdatePassword(user.ID, string(hash)); err != nil {
		return err
	}
	uc.recorder.Record(actor, entity.ActivityUpdate, "user", &user.ID, "cambio de contraseña", nil)
	return nil
}

// Me devuelve el perfil del actor autenticado.
func (uc *AuthUseCase) Me(actor dto.Actor) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(actor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := dto.FromUser(user)
	return &resp, nil
}
