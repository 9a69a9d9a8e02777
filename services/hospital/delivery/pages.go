package delivery

import (
	"hospital/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type pageHandler struct {
	flash *middleware.Flash
}

func NewPageDelivery(app *fiber.App, flash *middleware.Flash) {
	handler := &pageHandler{
		flash: flash,
	}

	app.Get("/", handler.Home)
	app.Get("/about", handler.About)
}

func (ph *pageHandler) Home(c *fiber.Ctx) error {
	return render(c, ph.flash, "home", nil)
}

func (ph *pageHandler) About(c *fiber.Ctx) error {
	return render(c, ph.flash, "about", nil)
}

// NotFound renders the 404 page for any path no route matched. Register it
// after every delivery and the static mount.
func NotFound(log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log.Errorf("404 - Not Found - %s", c.OriginalURL())
		return c.Status(fiber.StatusNotFound).Render("error", fiber.Map{
			"StatusCode": fiber.StatusNotFound,
			"Message":    "The page you're looking for doesn't exist or may have been moved.",
		})
	}
}
