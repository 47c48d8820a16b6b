package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vidora/vidora/internal/service"
	"github.com/vidora/vidora/internal/utils"
	"github.com/vidora/vidora/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

// captureUserID returns a next handler that records the user ID found in
// the request context, if any.
func captureUserID(got *int64, found *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got, *found = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tc.header)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantToken, token)
		})
	}
}

// ---- auth middleware ----

func TestAuth_ValidHeaderTokenInjectsUserID(t *testing.T) {
	auth := &mockAuthService{
		parseAccessTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt", tokenString)
			return models.Token{UserID: 42}, nil
		},
	}
	h := newTestHandler(auth, nil, nil)

	var gotID int64
	var found bool
	mw := h.auth(captureUserID(&gotID, &found))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt")
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, injectNopLogger(req))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, found)
	assert.Equal(t, int64(42), gotID)
}

func TestAuth_FallsBackToCookie(t *testing.T) {
	auth := &mockAuthService{
		parseAccessTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "cookie.jwt", tokenString)
			return models.Token{UserID: 42}, nil
		},
	}
	h := newTestHandler(auth, nil, nil)

	var gotID int64
	var found bool
	mw := h.auth(captureUserID(&gotID, &found))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "cookie.jwt"})
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, injectNopLogger(req))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotID)
}

func TestAuth_NoTokenRejects(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	mw := h.auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, injectNopLogger(req))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidTokenRejects(t *testing.T) {
	auth := &mockAuthService{
		parseAccessTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(auth, nil, nil)

	mw := h.auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt")
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, injectNopLogger(req))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ---- optionalAuth middleware ----

func TestOptionalAuth_ValidTokenInjectsUserID(t *testing.T) {
	auth := &mockAuthService{
		parseAccessTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 42}, nil
		},
	}
	h := newTestHandler(auth, nil, nil)

	var gotID int64
	var found bool
	mw := h.optionalAuth(captureUserID(&gotID, &found))

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt")
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, injectNopLogger(req))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, found)
	assert.Equal(t, int64(42), gotID)
}

func TestOptionalAuth_NoTokenPassesThroughAnonymously(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	var gotID int64
	var found bool
	mw := h.optionalAuth(captureUserID(&gotID, &found))

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, injectNopLogger(req))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, found)
	assert.Zero(t, gotID)
}

func TestOptionalAuth_InvalidTokenDegradesToAnonymous(t *testing.T) {
	auth := &mockAuthService{
		parseAccessTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(auth, nil, nil)

	var gotID int64
	var found bool
	mw := h.optionalAuth(captureUserID(&gotID, &found))

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer garbage.jwt")
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, injectNopLogger(req))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, found)
}
