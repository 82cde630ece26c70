package handlers

import (
	applog "driveline/internal/log"
	"driveline/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email, password, and name are required"})
	}
	sess, err := h.Auth.Signup(req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		applog.Security(c, "auth.signup.fail", map[string]any{"email": req.Email})
		return failAuth(c, "auth.signup", err)
	}
	applog.Audit(c, "auth.signup.success", map[string]any{"email": sess.User.Email})
	return c.Status(fiber.StatusCreated).JSON(sess)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email and password are required"})
	}
	sess, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email})
		return failAuth(c, "auth.login", err)
	}
	applog.Audit(c, "auth.login.success", map[string]any{"email": sess.User.Email})
	return c.JSON(sess)
}
