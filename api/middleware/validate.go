package middleware

import (
	"github.com/DSACMS/kyc-onboarding-api/pkg/validation"
	"github.com/gofiber/fiber/v2"
)

const localBody = "validatedBody"

// Validate parses the JSON body into T and runs every field rule on it. The
// request only reaches the next handler when the body is valid; handlers read it
// back with Body.
func Validate[T any](v *validation.Validator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req T
		if err := c.BodyParser(&req); err != nil {
			return validation.Errors{"request body must be valid JSON"}
		}

		if err := v.Struct(req); err != nil {
			return err
		}

		c.Locals(localBody, req)
		return c.Next()
	}
}

// Body returns the request stored by Validate. It panics when the route was
// registered without Validate[T].
func Body[T any](c *fiber.Ctx) T {
	return c.Locals(localBody).(T)
}
