package app

import (
	"net/http"
	"time"
)

// CookieName is the slot the visitor's bearer token lives in. Presence means
// "logged in"; the token itself is opaque and the backend is the sole judge
// of its validity.
const CookieName = "token"

// Session reads and writes the token cookie. It holds no per-visitor state;
// one instance is constructed at startup and injected into the page
// controllers.
type Session struct {
	ttl time.Duration
}

func NewSession(ttl time.Duration) *Session {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Session{ttl: ttl}
}

func (s *Session) SetToken(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.ttl),
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Session) Token(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func (s *Session) IsLoggedIn(r *http.Request) bool { return s.Token(r) != "" }

// ClearToken overwrites the cookie with an already-expired value. The logout
// controller follows up with a redirect to the login page.
func (s *Session) ClearToken(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:    CookieName,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})
}
