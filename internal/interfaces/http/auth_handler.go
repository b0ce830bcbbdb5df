package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bulldogbars/barstock-api/internal/application/auth"
	"github.com/bulldogbars/barstock-api/internal/application/dto"
)

// AuthHandler maneja login, registro y sesión.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.Envelope{data=dto.LoginResponse}
// @Failure      401   {object}  dto.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	out, err := h.uc.Login(in, c.IP())
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, out)
}

// Logout godoc
// @Summary      Cerrar sesión (registra la actividad; el token expira solo)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout(GetActor(c))
	return c.JSON(dto.OKMessage("sesión cerrada"))
}

// Register godoc
// @Summary      Registrar usuario (sólo admin)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.Envelope{data=dto.UserResponse}
// @Failure      409   {object}  dto.Envelope
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	out, err := h.uc.Register(in, GetActor(c))
	if err != nil {
		return failErr(c, err)
	}
	return created(c, out)
}

// ChangePassword godoc
// @Summary      Cambiar la propia contraseña
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "Contraseñas"
// @Success      200   {object}  dto.Envelope
// @Failure      401   {object}  dto.Envelope
// @Router       /api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	if err := h.uc.ChangePassword(in, GetActor(c)); err != nil {
		return failErr(c, err)
	}
	return c.JSON(dto.OKMessage("contraseña actualizada"))
}

// Me godoc
// @Summary      Usuario autenticado actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.UserResponse}
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(GetActor(c))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, out)
}
