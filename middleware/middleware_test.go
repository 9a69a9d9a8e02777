package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestMethodOverride_PutAndDelete(t *testing.T) {
	app := fiber.New()
	app.Use(MethodOverride())
	app.Put("/rooms/:id", func(c *fiber.Ctx) error { return c.SendString("put") })
	app.Delete("/rooms/:id", func(c *fiber.Ctx) error { return c.SendString("delete") })

	for _, method := range []string{"PUT", "DELETE"} {
		req := httptest.NewRequest(http.MethodPost, "/rooms/1", strings.NewReader("_method="+method))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, strings.ToLower(method), string(body))
	}
}

func TestMethodOverride_IgnoresOtherVerbs(t *testing.T) {
	app := fiber.New()
	app.Use(MethodOverride())
	app.Post("/rooms", func(c *fiber.Ctx) error { return c.SendString("post") })

	req := httptest.NewRequest(http.MethodPost, "/rooms", strings.NewReader("_method=PATCH"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "post", string(body))
}

func TestFlash_OneShot(t *testing.T) {
	app := fiber.New()
	flash := NewFlash()

	app.Get("/set", func(c *fiber.Ctx) error {
		flash.Error(c, "boom")
		return c.SendString("ok")
	})
	app.Get("/read", func(c *fiber.Ctx) error {
		_, errMsg := flash.Messages(c)
		return c.SendString(errMsg)
	})

	setResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/set", nil))
	assert.NoError(t, err)

	readReq := httptest.NewRequest(http.MethodGet, "/read", nil)
	for _, cookie := range setResp.Cookies() {
		readReq.AddCookie(cookie)
	}
	readResp, err := app.Test(readReq)
	assert.NoError(t, err)
	body, _ := io.ReadAll(readResp.Body)
	assert.Equal(t, "boom", string(body), "message must be visible to the next request")

	// Second read: the message is gone.
	againReq := httptest.NewRequest(http.MethodGet, "/read", nil)
	for _, cookie := range setResp.Cookies() {
		againReq.AddCookie(cookie)
	}
	againResp, err := app.Test(againReq)
	assert.NoError(t, err)
	body, _ = io.ReadAll(againResp.Body)
	assert.Empty(t, string(body), "flash messages are one-shot")
}

func TestFlash_SuccessAndErrorIndependent(t *testing.T) {
	app := fiber.New()
	flash := NewFlash()

	app.Get("/set", func(c *fiber.Ctx) error {
		flash.Success(c, "saved")
		return c.SendString("ok")
	})
	app.Get("/read", func(c *fiber.Ctx) error {
		success, errMsg := flash.Messages(c)
		return c.SendString(success + "|" + errMsg)
	})

	setResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/set", nil))
	assert.NoError(t, err)

	readReq := httptest.NewRequest(http.MethodGet, "/read", nil)
	for _, cookie := range setResp.Cookies() {
		readReq.AddCookie(cookie)
	}
	readResp, err := app.Test(readReq)
	assert.NoError(t, err)
	body, _ := io.ReadAll(readResp.Body)
	assert.Equal(t, "saved|", string(body))
}
