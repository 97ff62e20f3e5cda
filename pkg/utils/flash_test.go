package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashRoundTrip(t *testing.T) {
	setRec := httptest.NewRecorder()
	SetFlash(setRec, FlashSuccess, "Your review of Some Movie has been posted.")

	cookies := setRec.Result().Cookies()
	require.Len(t, cookies, 1)

	popReq := httptest.NewRequest(http.MethodGet, "/", nil)
	popReq.AddCookie(cookies[0])
	popRec := httptest.NewRecorder()

	flash := PopFlash(popRec, popReq)
	require.NotNil(t, flash)
	assert.Equal(t, FlashSuccess, flash.Level)
	assert.Equal(t, "Your review of Some Movie has been posted.", flash.Message)
}

func TestPopFlashClearsCookie(t *testing.T) {
	setRec := httptest.NewRecorder()
	SetFlash(setRec, FlashInfo, "You have been logged out.")

	popReq := httptest.NewRequest(http.MethodGet, "/", nil)
	popReq.AddCookie(setRec.Result().Cookies()[0])
	popRec := httptest.NewRecorder()
	PopFlash(popRec, popReq)

	cleared := popRec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Less(t, cleared[0].MaxAge, 0)
}

func TestPopFlashWithoutCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	assert.Nil(t, PopFlash(rec, req))
}

func TestPopFlashIgnoresGarbage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: "no-separator"})
	rec := httptest.NewRecorder()

	assert.Nil(t, PopFlash(rec, req))
}

func TestFlashMessageWithSpecialCharacters(t *testing.T) {
	setRec := httptest.NewRecorder()
	SetFlash(setRec, FlashError, "Welcome back, O'Brien & friends; enjoy!")

	popReq := httptest.NewRequest(http.MethodGet, "/", nil)
	popReq.AddCookie(setRec.Result().Cookies()[0])

	flash := PopFlash(httptest.NewRecorder(), popReq)
	require.NotNil(t, flash)
	assert.Equal(t, "Welcome back, O'Brien & friends; enjoy!", flash.Message)
}
