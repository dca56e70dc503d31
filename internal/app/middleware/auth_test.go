package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"book-office/internal/app/config"
	"book-office/internal/app/ds"
	"book-office/internal/app/redis"
	"book-office/internal/app/repository"
	"book-office/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions map[string]string

func (f fakeSessions) SessionUsername(_ context.Context, token string) (string, error) {
	if u, ok := f[token]; ok {
		return u, nil
	}
	if token == "broken-session" {
		return "", errors.New("dial tcp 127.0.0.1:6379: connection refused")
	}
	return "", redis.ErrSessionNotFound
}

type fakeUsers map[string]*ds.User

func (f fakeUsers) GetUserByUsername(_ context.Context, username string) (*ds.User, error) {
	if u, ok := f[username]; ok {
		return u, nil
	}
	if username == "unlucky" {
		return nil, errors.New("driver: bad connection")
	}
	return nil, repository.ErrNotFound
}

func testConfig() *config.Config {
	return &config.Config{
		JWT:     config.JWTConfig{Token: "test-secret", SigningMethod: jwt.SigningMethodHS256, ExpiresIn: time.Hour},
		Session: config.SessionConfig{CookieName: "session_id"},
	}
}

func newTestAuth() *AuthMiddleware {
	sessions := fakeSessions{
		"customer-session": "alice",
		"staff-session":    "manager",
		"orphan-session":   "ghost",
		"unlucky-session":  "unlucky",
	}
	users := fakeUsers{
		"alice":   {ID: 1, Username: "alice"},
		"manager": {ID: 2, Username: "manager", IsStaff: true},
	}
	return NewAuthMiddleware(sessions, users, testConfig())
}

func newTestRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/test", mw, func(c *gin.Context) {
		username := ""
		if u := CurrentUser(c); u != nil {
			username = u.Username
		}
		c.JSON(http.StatusOK, gin.H{"user": username, "session": SessionID(c)})
	})
	return router
}

func doRequest(router *gin.Engine, cookie string, header string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "session_id", Value: cookie})
	}
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWithAuthCheck_NoSession(t *testing.T) {
	router := newTestRouter(newTestAuth().WithAuthCheck())

	w := doRequest(router, "", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWithAuthCheck_UnknownSession(t *testing.T) {
	router := newTestRouter(newTestAuth().WithAuthCheck())

	w := doRequest(router, "nope", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWithAuthCheck_SessionForMissingUser(t *testing.T) {
	router := newTestRouter(newTestAuth().WithAuthCheck())

	w := doRequest(router, "orphan-session", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWithAuthCheck_ValidCookie(t *testing.T) {
	router := newTestRouter(newTestAuth().WithAuthCheck(role.Customer, role.Staff))

	w := doRequest(router, "customer-session", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":"alice"`)
	assert.Contains(t, w.Body.String(), `"session":"customer-session"`)
}

func TestWithAuthCheck_StaffOnly(t *testing.T) {
	router := newTestRouter(newTestAuth().WithAuthCheck(role.Staff))

	assert.Equal(t, http.StatusForbidden, doRequest(router, "customer-session", "").Code)
	assert.Equal(t, http.StatusOK, doRequest(router, "staff-session", "").Code)
}

func TestWithOptionalAuth(t *testing.T) {
	router := newTestRouter(newTestAuth().WithOptionalAuth())

	w := doRequest(router, "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":""`)

	w = doRequest(router, "bad-session", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":""`)

	w = doRequest(router, "staff-session", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":"manager"`)
}

func signedToken(t *testing.T, secret, sessionID string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: expiresAt.Unix()},
		SessionID:      sessionID,
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestWithAuthCheck_BearerToken(t *testing.T) {
	router := newTestRouter(newTestAuth().WithAuthCheck())

	good := signedToken(t, "test-secret", "customer-session", time.Now().Add(time.Hour))
	w := doRequest(router, "", "Bearer "+good)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":"alice"`)

	forged := signedToken(t, "other-secret", "customer-session", time.Now().Add(time.Hour))
	assert.Equal(t, http.StatusForbidden, doRequest(router, "", "Bearer "+forged).Code)

	expired := signedToken(t, "test-secret", "customer-session", time.Now().Add(-time.Hour))
	assert.Equal(t, http.StatusForbidden, doRequest(router, "", "Bearer "+expired).Code)

	revoked := signedToken(t, "test-secret", "revoked-session", time.Now().Add(time.Hour))
	assert.Equal(t, http.StatusForbidden, doRequest(router, "", "Bearer "+revoked).Code)
}

func TestCurrentUserAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, CurrentUser(c))
	assert.Equal(t, "", SessionID(c))
}

func TestBackendFailureIsNotAnonymous(t *testing.T) {
	am := newTestAuth()

	for _, mw := range []gin.HandlerFunc{am.WithAuthCheck(), am.WithOptionalAuth()} {
		router := newTestRouter(mw)

		w := doRequest(router, "broken-session", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		w = doRequest(router, "unlucky-session", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	}
}
