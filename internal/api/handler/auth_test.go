package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rodrigomedeirosbrazil/cms-api/internal/core"
	"github.com/rodrigomedeirosbrazil/cms-api/internal/model"
)

func newAuthHandler(db core.DB) *Auth {
	return NewAuth(core.NewAuthService(db, testHasher(), "test-secret", "cms-api-test"))
}

func TestAuthLogin_Success(t *testing.T) {
	hash, err := testHasher().Hash("123456")
	require.NoError(t, err)

	db := &handlerMockDB{}
	db.On("QueryRow", mock.Anything, sqlContains("WHERE email"), mock.Anything).
		Return(userRow(model.User{ID: 1, Name: "Test", Email: "test@test.com", PasswordHash: hash}))
	h := newAuthHandler(db)

	rec := httptest.NewRecorder()
	r := newRequest(http.MethodPost, "/api/login", map[string]any{
		"email":    "test@test.com",
		"password": "123456",
	})

	h.Login(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Token string `json:"token"`
		User  struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	body := decodeEnvelope(rec)
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, int64(1), data.User.ID)
	assert.Equal(t, "test@test.com", data.User.Email)
	assert.NotContains(t, rec.Body.String(), hash)
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	hash, err := testHasher().Hash("123456")
	require.NoError(t, err)

	db := &handlerMockDB{}
	db.On("QueryRow", mock.Anything, sqlContains("WHERE email"), mock.Anything).
		Return(userRow(model.User{ID: 1, Email: "test@test.com", PasswordHash: hash}))
	h := newAuthHandler(db)

	rec := httptest.NewRecorder()
	r := newRequest(http.MethodPost, "/api/login", map[string]any{
		"email":    "test@test.com",
		"password": "wrong",
	})

	h.Login(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, []string{"Invalid credentials."}, decodeEnvelope(rec).Errors)
}

func TestAuthLogin_UnknownEmail(t *testing.T) {
	db := &handlerMockDB{}
	db.On("QueryRow", mock.Anything, sqlContains("WHERE email"), mock.Anything).Return(noRow())
	h := newAuthHandler(db)

	rec := httptest.NewRecorder()
	r := newRequest(http.MethodPost, "/api/login", map[string]any{
		"email":    "nobody@test.com",
		"password": "123456",
	})

	h.Login(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthLogin_MissingFields(t *testing.T) {
	h := newAuthHandler(&handlerMockDB{})

	rec := httptest.NewRecorder()
	r := newRequest(http.MethodPost, "/api/login", map[string]any{})

	h.Login(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"Email must be provided.", "Password must be provided."}, decodeEnvelope(rec).Errors)
}
