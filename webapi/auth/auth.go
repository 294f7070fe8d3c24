// Package auth exposes the registration and session routes.
package auth

import (
	"errors"

	userdomain "github.com/Elias-Manica/My-wallet-back/pkg/domain/user"
	"github.com/Elias-Manica/My-wallet-back/pkg/middleware"
	authsvc "github.com/Elias-Manica/My-wallet-back/pkg/service/auth"
	"github.com/Elias-Manica/My-wallet-back/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the public auth endpoints and the protected sign-out.
func Routes(app *fiber.App, svc *authsvc.Service) {
	app.Post("/sign-up", SignUp(svc))
	app.Post("/login", Login(svc))
	app.Post("/sign-out", middleware.TokenProtected(svc), SignOut(svc))
}

// SignUp registers a new user.
// @Summary Register a new user
// @Description Create a user account with name, email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Sign-up data"
// @Success 201 {object} common.MessageResponse
// @Failure 401 {object} common.MessageResponse
// @Failure 422 {array} string
// @Router /sign-up [post]
func SignUp(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req SignUpRequest
		if err := c.BodyParser(&req); err != nil {
			return common.ValidationJSON(c, []string{"invalid request body"})
		}
		if msgs := req.Validate(); msgs != nil {
			return common.ValidationJSON(c, msgs)
		}
		_, err := svc.SignUp(c.Context(), req.Name, req.Email, req.Password)
		switch {
		case err == nil:
			return common.MessageJSON(c, fiber.StatusCreated, "user created successfully")
		case errors.Is(err, userdomain.ErrEmailTaken):
			return common.MessageJSON(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, userdomain.ErrInvalidName),
			errors.Is(err, userdomain.ErrInvalidEmail),
			errors.Is(err, userdomain.ErrInvalidPassword):
			return common.ValidationJSON(c, []string{err.Error()})
		default:
			return common.MessageJSON(c, fiber.StatusInternalServerError, "internal server error")
		}
	}
}

// Login authenticates a user and returns a fresh bearer token.
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 404 {object} common.MessageResponse
// @Failure 422 {array} string
// @Router /login [post]
func Login(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return common.ValidationJSON(c, []string{"invalid request body"})
		}
		if msgs := req.Validate(); msgs != nil {
			return common.ValidationJSON(c, msgs)
		}
		token, err := svc.Login(c.Context(), req.Email, req.Password)
		switch {
		case err == nil:
			return c.Status(fiber.StatusOK).JSON(LoginResponse{Email: req.Email, Token: token})
		case errors.Is(err, userdomain.ErrInvalidCredentials):
			return common.MessageJSON(c, fiber.StatusNotFound, err.Error())
		default:
			return common.MessageJSON(c, fiber.StatusInternalServerError, "internal server error")
		}
	}
}

// SignOut invalidates the caller's session.
// @Summary Sign out
// @Description Invalidate the bearer token carried in the Authorization header
// @Tags auth
// @Produce json
// @Success 200 {object} common.MessageResponse
// @Failure 401 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /sign-out [post]
// @Security Bearer
func SignOut(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, _ := c.Locals(middleware.TokenKey).(string)
		err := svc.SignOut(c.Context(), token)
		switch {
		case err == nil:
			return common.MessageJSON(c, fiber.StatusOK, "signed out successfully")
		case errors.Is(err, userdomain.ErrSessionNotFound):
			return common.MessageJSON(c, fiber.StatusNotFound, err.Error())
		default:
			return common.MessageJSON(c, fiber.StatusInternalServerError, "internal server error")
		}
	}
}
