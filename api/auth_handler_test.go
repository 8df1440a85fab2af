package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCallbackRedirectsBySessionPresence(t *testing.T) {
	h := newAuthHandler("/profile", "/login")

	cases := []struct {
		name   string
		setup  func(r *http.Request)
		target string
	}{
		{
			"query access token",
			func(r *http.Request) {
				q := r.URL.Query()
				q.Set("access_token", "some-token")
				r.URL.RawQuery = q.Encode()
			},
			"/profile",
		},
		{
			"session cookie",
			func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "sb-access-token", Value: "some-token"})
			},
			"/profile",
		},
		{
			"no session",
			func(r *http.Request) {},
			"/login",
		},
		{
			"empty cookie",
			func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "sb-access-token", Value: ""})
			},
			"/login",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/auth/callback", nil)
			tc.setup(req)
			rec := httptest.NewRecorder()
			h.callback()(rec, req)

			if rec.Code != http.StatusTemporaryRedirect {
				t.Fatalf("expected 307, got %d", rec.Code)
			}
			if loc := rec.Header().Get("Location"); loc != tc.target {
				t.Errorf("expected redirect to %s, got %s", tc.target, loc)
			}
		})
	}
}
