package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/ramorim1998/gerador-times-back/internal/middleware"
	"github.com/ramorim1998/gerador-times-back/tests/testutil"
	"github.com/stretchr/testify/require"
)

type route struct {
	method  string
	path    string
	handler drift.HandlerFunc
}

func newTestApp(routes ...route) http.Handler {
	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(testutil.TestIdentityDecoder()))
	for _, r := range routes {
		switch r.method {
		case http.MethodGet:
			app.Get(r.path, r.handler)
		case http.MethodPost:
			app.Post(r.path, r.handler)
		case http.MethodPatch:
			app.Patch(r.path, r.handler)
		case http.MethodDelete:
			app.Delete(r.path, r.handler)
		}
	}
	return app
}

func doRequest(t *testing.T, app http.Handler, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("Authorization", testutil.AuthHeader(testutil.GenerateTestToken(t, userID, userID+"@example.com")))
	}

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}
