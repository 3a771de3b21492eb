package session

import (
	"crypto/sha256"
	"log"
	"net/http"

	"github.com/gorilla/securecookie"
)

const cookieName = "visaportal_session"

// CookieStore signs the session field map into a client-side cookie. The
// payload is HMAC-signed, not encrypted: tampering is detected, disclosure
// is out of scope (the password never enters the session to begin with).
type CookieStore struct {
	codec *securecookie.SecureCookie
}

func NewCookieStore(secret string) *CookieStore {
	hashKey := sha256.Sum256([]byte(secret))
	return &CookieStore{codec: securecookie.New(hashKey[:], nil)}
}

// Load decodes the session cookie from the request. A missing, expired, or
// tampered cookie yields an empty session rather than an error.
func (s *CookieStore) Load(r *http.Request) Values {
	v := NewValues()
	c, err := r.Cookie(cookieName)
	if err != nil {
		return v
	}
	if err := s.codec.Decode(cookieName, c.Value, (*map[string]string)(&v)); err != nil {
		log.Printf("session: discarding undecodable cookie: %v", err)
		return NewValues()
	}
	return v
}

// Save writes the session values back to the client. An empty session
// expires the cookie instead of setting an empty one.
func (s *CookieStore) Save(w http.ResponseWriter, v Values) {
	if len(v) == 0 {
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return
	}
	encoded, err := s.codec.Encode(cookieName, map[string]string(v))
	if err != nil {
		log.Printf("session: encode failed: %v", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
