// Package flash carries one-shot user-visible messages across a redirect
// in a short-lived cookie, read and cleared on the next rendered page.
package flash

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

const cookieName = "mr_flash"

// Level classifies a message for presentation.
type Level string

const (
	Success Level = "success"
	Info    Level = "info"
	Danger  Level = "danger"
)

// Message is a single flashed notice.
type Message struct {
	Level Level
	Text  string
}

// Set queues a message for the next rendered page.
func Set(c echo.Context, level Level, text string) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(string(level) + "|" + text),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending message, if any, and clears it.
func Pop(c echo.Context) (Message, bool) {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return Message{}, false
	}

	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return Message{}, false
	}
	level, text, found := strings.Cut(raw, "|")
	if !found {
		return Message{Level: Info, Text: raw}, true
	}
	return Message{Level: Level(level), Text: text}, true
}
