package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rodrigomedeirosbrazil/cms-api/internal/core"
	"github.com/rodrigomedeirosbrazil/cms-api/internal/crypto"
)

// newRequest creates a new HTTP request with an optional JSON body.
func newRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	r := httptest.NewRequest(method, target, &buf)
	r.Header.Set("Content-Type", "application/json")
	return r
}

// newRequestRaw creates a new HTTP request with a raw string body.
func newRequestRaw(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// withChiURLParam adds a chi URL parameter to the request context.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// envelope mirrors the response envelope for assertions.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []string        `json:"errors"`
}

// decodeEnvelope parses the JSON envelope from a recorded response.
func decodeEnvelope(rec *httptest.ResponseRecorder) envelope {
	var body envelope
	json.Unmarshal(rec.Body.Bytes(), &body)
	return body
}

func testHasher() crypto.Hasher {
	return crypto.NewBcryptHasher(bcrypt.MinCost)
}

func newUserHandler(db core.DB) *User {
	return NewUser(core.NewUserService(db, testHasher()))
}
