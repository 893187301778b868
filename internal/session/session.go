// Package session implements the client-held session: an encrypted and
// HMAC-authenticated cookie value carrying the logged-in user's identity.
// There is no server-side session storage; the cookie is the session, and
// it is treated as untrusted input verified on every read.
package session

import (
	"crypto/sha512"

	"github.com/gorilla/securecookie"
)

// CookieName is the single session cookie the panel uses.
const CookieName = "dockpanel_session"

// Session is the decoded cookie payload. UserID and Username are set
// together on login or registration and are never set independently; an
// empty UserID means the request is anonymous.
type Session struct {
	UserID   string `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
}

// Authenticated reports whether the session carries a principal.
func (s Session) Authenticated() bool {
	return s.UserID != ""
}

// Codec encrypts, signs, and verifies session cookie values.
type Codec struct {
	sc *securecookie.SecureCookie

	// Secure mirrors the deployment environment: cookies are marked
	// Secure everywhere except local development.
	Secure bool
}

// NewCodec derives the hash and block keys from the one operator-supplied
// secret. SHA-512 yields exactly the 32-byte HMAC key and 32-byte AES key
// securecookie wants, so one secret configures both.
func NewCodec(secret string, secure bool) *Codec {
	sum := sha512.Sum512([]byte(secret))
	sc := securecookie.New(sum[:32], sum[32:])
	sc.SetSerializer(securecookie.JSONEncoder{})
	return &Codec{sc: sc, Secure: secure}
}

// Load decodes and verifies a cookie value. A missing cookie, tampered
// ciphertext, or a value minted under a different secret all yield the
// anonymous session; garbage from a client must never fail the request.
func (c *Codec) Load(value string) Session {
	if value == "" {
		return Session{}
	}
	var s Session
	if err := c.sc.Decode(CookieName, value, &s); err != nil {
		return Session{}
	}
	// A payload with only one identity field set is not a session this
	// codec ever wrote; treat it as anonymous too.
	if (s.UserID == "") != (s.Username == "") {
		return Session{}
	}
	return s
}

// Persist encrypts and signs the session into a cookie value.
func (c *Codec) Persist(s Session) (string, error) {
	return c.sc.Encode(CookieName, s)
}
