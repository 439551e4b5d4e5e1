package app_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hbnb_web/internal/app"
)

func TestSession_SetToken(t *testing.T) {
	s := app.NewSession(0) // default 7 days
	rr := httptest.NewRecorder()
	before := time.Now()

	s.SetToken(rr, "abc")

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "token", c.Name)
	assert.Equal(t, "abc", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	want := before.Add(7 * 24 * time.Hour)
	assert.WithinDuration(t, want, c.Expires, time.Minute)
}

func TestSession_TokenRoundTrip(t *testing.T) {
	s := app.NewSession(time.Hour)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, s.Token(r))
	assert.False(t, s.IsLoggedIn(r))

	r.AddCookie(&http.Cookie{Name: "token", Value: "abc"})
	assert.Equal(t, "abc", s.Token(r))
	assert.True(t, s.IsLoggedIn(r))
}

func TestSession_ClearToken(t *testing.T) {
	s := app.NewSession(time.Hour)
	rr := httptest.NewRecorder()

	s.ClearToken(rr)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "token", c.Name)
	assert.Empty(t, c.Value)
	assert.True(t, c.Expires.Before(time.Now()), "cleared cookie must already be expired")
}
