package utils

import (
	"net/http"
	"net/url"
	"strings"
)

// Flash notices mirror the one-shot messages a browser app shows after a
// redirect. The notice rides a short-lived cookie and is cleared on read.

const flashCookie = "flash"

const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashError   = "error"
)

type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// SetFlash queues a notice for the next request
func SetFlash(w http.ResponseWriter, level, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(level + "|" + message),
		Path:     "/",
		HttpOnly: true,
	})
}

// PopFlash reads and clears the pending notice, if any
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	// Expire the cookie so the notice shows once
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}

	level, message, found := strings.Cut(raw, "|")
	if !found || message == "" {
		return nil
	}

	return &Flash{Level: level, Message: message}
}
