package handlers

import (
	"net/http"

	"driveline/internal/apperr"
	applog "driveline/internal/log"

	"github.com/gofiber/fiber/v2"
)

// fail maps err through the apperr taxonomy: fixed status, public message
// only. Internal causes are logged here and never reach the body.
func fail(c *fiber.Ctx, action string, err error) error {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		applog.Error(c, action, err, nil)
	}
	return c.Status(status).JSON(fiber.Map{"error": apperr.Public(err)})
}

// failAuth is the auth-endpoint variant: same mapping, {"message": ...} body
// shape for the frontend's auth service.
func failAuth(c *fiber.Ctx, action string, err error) error {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		applog.Error(c, action, err, nil)
	}
	return c.Status(status).JSON(fiber.Map{"message": apperr.Public(err)})
}
