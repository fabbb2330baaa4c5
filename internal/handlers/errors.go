// Package handlers is the HTTP edge: it parses requests, calls services and
// translates domain errors into statuses. No business rules live here.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	errs "standsreg/internal/errors"
	"standsreg/internal/utils"
	"standsreg/internal/validation"
)

// respondError maps a service error to its HTTP status. Unknown errors are a
// 500 with a generic body so internals never leak to clients.
func respondError(c *fiber.Ctx, err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return utils.Respond(c, fiber.StatusUnprocessableEntity, fiber.Map{
			"error":  "validation failed",
			"fields": verrs,
		})
	}

	var derr *errs.DomainError
	if errors.As(err, &derr) {
		return utils.Respond(c, statusFor(derr), fiber.Map{
			"error": derr.Message,
			"code":  derr.Code,
		})
	}

	return utils.InternalError(c, "internal server error")
}

func statusFor(err *errs.DomainError) int {
	switch err {
	case errs.ErrInvalidToken, errs.ErrInvalidCredentials:
		return fiber.StatusUnauthorized
	case errs.ErrNotAuthorized:
		return fiber.StatusForbidden
	case errs.ErrApplicationNotFound, errs.ErrUserNotFound, errs.ErrCompanyNotFound:
		return fiber.StatusNotFound
	case errs.ErrEmailTaken, errs.ErrCompanyNameTaken:
		return fiber.StatusBadRequest
	case errs.ErrDuplicateReceipt, errs.ErrInvalidTransition:
		return fiber.StatusConflict
	case errs.ErrUploadFailed:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// parseIDParam reads a positive integer route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
