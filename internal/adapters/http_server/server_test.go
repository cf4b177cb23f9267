package httpserver_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	httpserver "elhamas/internal/adapters/http_server"
	"elhamas/internal/adapters/objectstore"
	"elhamas/internal/app"
	"elhamas/internal/domain"
	"elhamas/internal/i18n"
)

const secret = "test-secret"

// newTestServer wires the router without a datastore: public reads fall back
// to empty results and admin writes answer 503.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	disk, err := objectstore.NewDisk(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	s := httpserver.New(domain.LocaleEN)
	s.MountHandlers(&httpserver.Handlers{
		Q:            app.NewQueryService(nil),
		Inquiries:    app.NewInquiryService(nil),
		Dict:         i18n.Default(),
		InquiryLimit: httpserver.RateLimit(1, 2),
	})
	s.MountAdmin(&httpserver.AdminHandlers{
		Admin:   app.NewAdmin(nil),
		Auth:    app.NewAuthService(nil, nil, secret, time.Hour),
		Uploads: app.NewUploadService(disk, 1<<20),
	})
	return s.Mux()
}

func adminToken(t *testing.T) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin-1",
		"sid": "s-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func do(t *testing.T, h http.Handler, method, path string, body string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	return doFrom(t, h, "192.0.2.1:1234", method, path, body, hdr)
}

// doFrom sends the request from the given TCP peer.
func doFrom(t *testing.T, h http.Handler, peer, method, path string, body string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.RemoteAddr = peer
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body.Error
}

/********** public **********/

func TestHealthz(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestPublicList_FallsBackAndCaches(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/locations", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("body %q", rec.Body.String())
	}
	etag := rec.Header().Get("ETag")
	if !strings.HasPrefix(etag, `W/"`) {
		t.Fatalf("etag %q", etag)
	}

	rec = do(t, h, http.MethodGet, "/api/locations", "", map[string]string{"If-None-Match": etag})
	if rec.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", rec.Code)
	}
}

func TestPublicDetail_NotFound(t *testing.T) {
	h := newTestServer(t)
	for _, path := range []string{"/api/hotels/nope", "/api/events/nope", "/api/blog/nope", "/api/nothing-here"} {
		rec := do(t, h, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: status %d", path, rec.Code)
		}
		if msg := errorOf(t, rec); msg != "not found" {
			t.Fatalf("%s: error %q", path, msg)
		}
	}
}

func TestHome_UsesNegotiatedLocale(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/home", "", map[string]string{"Accept-Language": "ar-SA,ar;q=0.9"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var home domain.HomeView
	if err := json.Unmarshal(rec.Body.Bytes(), &home); err != nil {
		t.Fatal(err)
	}
	if home.Locale != domain.LocaleAR || home.Dir != "rtl" || home.Hotels == nil {
		t.Fatalf("home = %+v", home)
	}
	if cl := rec.Header().Get("Content-Language"); cl != "ar" {
		t.Fatalf("Content-Language %q", cl)
	}
}

func TestDictionary(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/i18n/ar", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var body struct {
		Locale   string            `json:"locale"`
		Dir      string            `json:"dir"`
		Messages map[string]string `json:"messages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Dir != "rtl" || body.Messages["nav.home"] != "الرئيسية" {
		t.Fatalf("dictionary = %+v", body)
	}

	if rec := do(t, h, http.MethodGet, "/api/i18n/fr", "", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown locale: %d", rec.Code)
	}
}

func TestLocaleSwitch(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPut, "/api/locale", `{"locale":"ar"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == i18n.CookieName {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value != "ar" || cookie.MaxAge < 360*24*3600 {
		t.Fatalf("cookie = %+v", cookie)
	}
	if cl := rec.Header().Get("Content-Language"); cl != "ar" {
		t.Fatalf("Content-Language %q", cl)
	}

	// the cookie wins over Accept-Language on the next request
	req := httptest.NewRequest(http.MethodGet, "/api/locale", nil)
	req.AddCookie(cookie)
	req.Header.Set("Accept-Language", "en-US")
	got := httptest.NewRecorder()
	h.ServeHTTP(got, req)
	if !strings.Contains(got.Body.String(), `"locale":"ar"`) {
		t.Fatalf("locale after switch: %s", got.Body.String())
	}

	if rec := do(t, h, http.MethodPut, "/api/locale", `{"locale":"fr"}`, nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("unsupported locale: %d", rec.Code)
	}
}

func TestInquiry_ValidationAndRateLimit(t *testing.T) {
	h := newTestServer(t)
	const peer = "203.0.113.7:40000"

	rec := doFrom(t, h, peer, http.MethodPost, "/api/inquiries", `{"name":"","email":"nope"}`, nil)
	if rec.Code != http.StatusBadRequest || errorOf(t, rec) == "" {
		t.Fatalf("invalid inquiry: %d %s", rec.Code, rec.Body.String())
	}

	rec = doFrom(t, h, peer, http.MethodPost, "/api/inquiries", `{"name":"Amina","email":"amina@example.com"}`, nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("valid inquiry without datastore: %d", rec.Code)
	}

	// a fresh forwarding header does not make the same peer a new client
	rec = doFrom(t, h, peer, http.MethodPost, "/api/inquiries", `{"name":"Amina","email":"amina@example.com"}`,
		map[string]string{"X-Forwarded-For": "10.9.9.9", "X-Real-IP": "10.9.9.9"})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}

	// other clients are unaffected
	rec = doFrom(t, h, "198.51.100.1:40000", http.MethodPost, "/api/inquiries", `not json`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json: %d", rec.Code)
	}
}

/********** admin **********/

func TestAdmin_RequiresSession(t *testing.T) {
	h := newTestServer(t)
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/admin/locations"},
		{http.MethodPost, "/api/admin/hotels"},
		{http.MethodGet, "/api/admin/me"},
		{http.MethodPost, "/api/admin/uploads"},
	} {
		rec := do(t, h, tc.method, tc.path, "", nil)
		if rec.Code != http.StatusUnauthorized || errorOf(t, rec) != "unauthorized" {
			t.Fatalf("%s %s: %d %s", tc.method, tc.path, rec.Code, rec.Body.String())
		}
	}

	rec := do(t, h, http.MethodGet, "/api/admin/locations", "", map[string]string{"Authorization": "Bearer junk"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("junk token: %d", rec.Code)
	}
}

func TestAdmin_WithoutDatastore(t *testing.T) {
	h := newTestServer(t)
	auth := map[string]string{"Authorization": "Bearer " + adminToken(t)}

	rec := do(t, h, http.MethodGet, "/api/admin/locations", "", auth)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("list: %d", rec.Code)
	}
	rec = do(t, h, http.MethodPost, "/api/admin/locations", `{"nameEn":"Makkah","nameAr":"مكة"}`, auth)
	if rec.Code != http.StatusServiceUnavailable || errorOf(t, rec) != "database not configured" {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	rec = do(t, h, http.MethodPost, "/api/admin/login", `{"email":"a@b.co","password":"x"}`, nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("login: %d", rec.Code)
	}
}

func TestAdmin_WizardStep(t *testing.T) {
	h := newTestServer(t)
	auth := map[string]string{"Authorization": "Bearer " + adminToken(t)}

	rec := do(t, h, http.MethodPost, "/api/admin/packages/wizard/basics", `{"titleEn":"Umrah","titleAr":"عمرة"}`, auth)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"next":"pricing"`) {
		t.Fatalf("basics: %d %s", rec.Code, rec.Body.String())
	}
	rec = do(t, h, http.MethodPost, "/api/admin/packages/wizard/pricing", `{"durationDays":0,"price":10}`, auth)
	if rec.Code != http.StatusBadRequest || !strings.Contains(errorOf(t, rec), "durationDays") {
		t.Fatalf("pricing: %d %s", rec.Code, rec.Body.String())
	}
	rec = do(t, h, http.MethodPost, "/api/admin/packages/wizard/shipping", `{}`, auth)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown step: %d", rec.Code)
	}
}

func multipartFile(t *testing.T, name string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = fw.Write(data)
	_ = mw.Close()
	return &buf, mw.FormDataContentType()
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestAdmin_Upload(t *testing.T) {
	h := newTestServer(t)
	token := adminToken(t)

	send := func(name string, data []byte) *httptest.ResponseRecorder {
		body, ct := multipartFile(t, name, data)
		req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", body)
		req.Header.Set("Content-Type", ct)
		req.AddCookie(&http.Cookie{Name: httpserver.SessionCookie, Value: token})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := send("a.png", tinyPNG(t))
	if rec.Code != http.StatusCreated {
		t.Fatalf("png: %d %s", rec.Code, rec.Body.String())
	}
	var out struct {
		URL string `json:"url"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	if !strings.HasPrefix(out.URL, "/uploads/") || !strings.HasSuffix(out.URL, ".png") {
		t.Fatalf("url %q", out.URL)
	}

	rec = send("notes.txt", []byte("just some text"))
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("text: %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", strings.NewReader(""))
	req.Header.Set("Authorization", "Bearer "+token)
	missing := httptest.NewRecorder()
	h.ServeHTTP(missing, req)
	if missing.Code != http.StatusBadRequest {
		t.Fatalf("missing file: %d", missing.Code)
	}
}
