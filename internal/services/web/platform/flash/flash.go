// Package flash carries one-time notices across a POST/redirect/GET hop in
// a signed cookie.
package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"net/http"
	"strings"

	"github.com/gorilla/securecookie"

	"github.com/claimwise/site/internal/services/web/platform/requestmeta"
)

// CookieName holds the pending notice.
const CookieName = "claimwise_flash"

// maxAgeSeconds bounds how long a notice survives an abandoned redirect.
const maxAgeSeconds = 120

// Kind selects how a notice is styled.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// Notice references a catalog key to show on the next page.
type Notice struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key"`
}

// Success returns a success notice for key.
func Success(key string) Notice {
	return Notice{Kind: KindSuccess, Key: key}
}

// Store signs and reads notice cookies. A nil *Store drops every notice.
type Store struct {
	codec  *securecookie.SecureCookie
	policy requestmeta.SchemePolicy
}

// NewStore returns a Store whose signing key is derived from secret.
func NewStore(secret []byte, policy requestmeta.SchemePolicy) *Store {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(CookieName))
	codec := securecookie.New(mac.Sum(nil), nil)
	codec.MaxAge(maxAgeSeconds)
	codec.SetSerializer(securecookie.JSONEncoder{})
	return &Store{codec: codec, policy: policy}
}

// Write sets the notice cookie. Unknown kinds and blank keys are ignored.
func (s *Store) Write(w http.ResponseWriter, r *http.Request, notice Notice) {
	if s == nil || w == nil {
		return
	}
	notice, ok := normalize(notice)
	if !ok {
		return
	}
	value, err := s.codec.Encode(CookieName, notice)
	if err != nil {
		return
	}
	http.SetCookie(w, s.cookie(r, value, maxAgeSeconds))
}

// ReadAndClear returns the pending notice, if any, and expires the cookie.
func (s *Store) ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	if s == nil || r == nil {
		return Notice{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	if w != nil {
		http.SetCookie(w, s.cookie(r, "", -1))
	}
	var notice Notice
	if err := s.codec.Decode(CookieName, cookie.Value, &notice); err != nil {
		return Notice{}, false
	}
	return normalize(notice)
}

func (s *Store) cookie(r *http.Request, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	}
}

func normalize(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	if notice.Key == "" {
		return Notice{}, false
	}
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case KindSuccess, KindInfo, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}
