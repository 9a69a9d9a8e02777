package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	successKey = "success_msg"
	errorKey   = "error_msg"
)

// Flash is a session-backed one-shot message store. A message set during
// one request is visible to the next rendered page only, then cleared.
type Flash struct {
	store *session.Store
}

func NewFlash() *Flash {
	return &Flash{
		store: session.New(session.Config{
			KeyLookup:      "cookie:hospital_session",
			Expiration:     30 * time.Minute,
			CookieHTTPOnly: true,
		}),
	}
}

func (f *Flash) Success(c *fiber.Ctx, msg string) {
	f.set(c, successKey, msg)
}

func (f *Flash) Error(c *fiber.Ctx, msg string) {
	f.set(c, errorKey, msg)
}

func (f *Flash) set(c *fiber.Ctx, key, msg string) {
	sess, err := f.store.Get(c)
	if err != nil {
		return
	}
	sess.Set(key, msg)
	_ = sess.Save()
}

// Messages returns the pending flash messages and clears them.
func (f *Flash) Messages(c *fiber.Ctx) (success, errMsg string) {
	sess, err := f.store.Get(c)
	if err != nil {
		return "", ""
	}

	if v, ok := sess.Get(successKey).(string); ok {
		success = v
		sess.Delete(successKey)
	}
	if v, ok := sess.Get(errorKey).(string); ok {
		errMsg = v
		sess.Delete(errorKey)
	}
	_ = sess.Save()
	return success, errMsg
}
