package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// MethodOverride lets HTML forms reach PUT and DELETE handlers by POSTing
// a _method field. Only those two verbs are honored.
func MethodOverride() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodPost {
			switch strings.ToUpper(c.FormValue("_method")) {
			case fiber.MethodPut:
				c.Method(fiber.MethodPut)
			case fiber.MethodDelete:
				c.Method(fiber.MethodDelete)
			}
		}
		return c.Next()
	}
}
