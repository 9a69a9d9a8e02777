package delivery

import (
	"hospital/middleware"

	"github.com/gofiber/fiber/v2"
)

// render merges the pending one-shot flash messages into the bind so every
// view can show them.
func render(c *fiber.Ctx, flash *middleware.Flash, name string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}

	success, errMsg := flash.Messages(c)
	bind["SuccessMsg"] = success
	bind["ErrorMsg"] = errMsg

	return c.Render(name, bind)
}
