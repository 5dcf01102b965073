package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/claimwise/site/internal/services/web/platform/requestmeta"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestWriteThenReadAndClear(t *testing.T) {
	t.Parallel()

	store := NewStore(testSecret, requestmeta.SchemePolicy{})
	writeRecorder := httptest.NewRecorder()
	store.Write(writeRecorder, httptest.NewRequest(http.MethodPost, "/contact", nil), Success("contact.notice.sent"))

	cookies := writeRecorder.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("cookies = %#v", cookies)
	}
	if !cookies[0].HttpOnly || cookies[0].Secure {
		t.Fatalf("unexpected cookie flags: %#v", cookies[0])
	}

	next := httptest.NewRequest(http.MethodGet, "/contact", nil)
	next.AddCookie(cookies[0])
	readRecorder := httptest.NewRecorder()
	notice, ok := store.ReadAndClear(readRecorder, next)
	if !ok {
		t.Fatal("expected notice")
	}
	if notice != Success("contact.notice.sent") {
		t.Fatalf("notice = %#v", notice)
	}
	cleared := readRecorder.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Fatalf("expected expiring cookie, got %#v", cleared)
	}
}

func TestWriteIgnoresInvalidNotice(t *testing.T) {
	t.Parallel()

	store := NewStore(testSecret, requestmeta.SchemePolicy{})
	for _, notice := range []Notice{{Kind: "loud", Key: "x"}, {Kind: KindInfo, Key: "  "}} {
		rr := httptest.NewRecorder()
		store.Write(rr, httptest.NewRequest(http.MethodGet, "/", nil), notice)
		if len(rr.Result().Cookies()) != 0 {
			t.Fatalf("unexpected cookie for %#v", notice)
		}
	}
}

func TestReadAndClearRejectsForeignSignature(t *testing.T) {
	t.Parallel()

	other := NewStore([]byte("another-secret-another-secret-xx"), requestmeta.SchemePolicy{})
	rr := httptest.NewRecorder()
	other.Write(rr, httptest.NewRequest(http.MethodPost, "/contact", nil), Success("contact.notice.sent"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rr.Result().Cookies()[0])
	if _, ok := NewStore(testSecret, requestmeta.SchemePolicy{}).ReadAndClear(httptest.NewRecorder(), req); ok {
		t.Fatal("expected cookie signed with another key to be ignored")
	}

	garbage := httptest.NewRequest(http.MethodGet, "/", nil)
	garbage.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-signed-value"})
	if _, ok := NewStore(testSecret, requestmeta.SchemePolicy{}).ReadAndClear(httptest.NewRecorder(), garbage); ok {
		t.Fatal("expected garbage cookie to be ignored")
	}
}

func TestSecureFlagFollowsPolicy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rr := httptest.NewRecorder()
	NewStore(testSecret, requestmeta.SchemePolicy{TrustForwardedProto: true}).Write(rr, req, Success("contact.notice.sent"))
	if cookies := rr.Result().Cookies(); len(cookies) != 1 || !cookies[0].Secure {
		t.Fatalf("expected secure cookie, got %#v", cookies)
	}
}

func TestNilStoreIsInert(t *testing.T) {
	t.Parallel()

	var store *Store
	rr := httptest.NewRecorder()
	store.Write(rr, httptest.NewRequest(http.MethodPost, "/contact", nil), Success("contact.notice.sent"))
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("nil store wrote a cookie")
	}
	if _, ok := store.ReadAndClear(rr, httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Fatal("nil store returned a notice")
	}
}
