package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todo-api/internal/auth"
	"github.com/yukikurage/todo-api/internal/constants"
)

var testSecret = []byte("middleware-test-secret")

func setupRouter(t *testing.T) (*gin.Engine, *auth.TokenManager, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewTokenManager(testSecret, 0)
	require.NoError(t, err)

	reached := false
	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		reached = true
		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "missing user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user_id":  userID.String(),
			"username": c.GetString(constants.ContextKeyUsername),
		})
	})

	return r, tokens, &reached
}

func doRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_ValidToken(t *testing.T) {
	r, tokens, reached := setupRouter(t)

	userID := uuid.New()
	token, err := tokens.Issue(userID.String(), "alice")
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
	assert.JSONEq(t, `{"user_id":"`+userID.String()+`","username":"alice"}`, w.Body.String())
}

func TestRequireAuth_Rejections(t *testing.T) {
	_, tokens, _ := setupRouter(t)

	valid, err := tokens.Issue(uuid.NewString(), "alice")
	require.NoError(t, err)

	noUserID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": "alice"}).SignedString(testSecret)
	require.NoError(t, err)

	notUUID, err := tokens.Issue("42", "alice")
	require.NoError(t, err)

	numericUserID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": 42}).SignedString(testSecret)
	require.NoError(t, err)

	cases := []struct {
		name    string
		header  string
		message string
	}{
		{"missing header", "", "No token provided"},
		{"wrong scheme", "Token abc", "Invalid authorization header format"},
		{"lowercase scheme", "bearer " + valid, "Invalid authorization header format"},
		{"no token part", "Bearer", "Invalid authorization header format"},
		{"too many parts", "Bearer " + valid + " extra", "Invalid authorization header format"},
		{"double space", "Bearer  " + valid, "Invalid authorization header format"},
		{"garbage token", "Bearer abc", "Invalid or expired token"},
		{"tampered token", "Bearer " + valid + "x", "Invalid or expired token"},
		{"missing user id", "Bearer " + noUserID, "Invalid token payload"},
		{"non uuid user id", "Bearer " + notUUID, "Invalid token payload"},
		{"numeric user id", "Bearer " + numericUserID, "Invalid token payload"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _, reached := setupRouter(t)

			w := doRequest(r, tc.header)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, *reached, "handler must not run")
			assert.JSONEq(t, `{"code":"UNAUTHORIZED","message":"`+tc.message+`"}`, w.Body.String())
		})
	}
}

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := GetUserID(c)
	assert.False(t, ok)

	id := uuid.New()
	c.Set(constants.ContextKeyUserID, id)
	got, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	c.Set(constants.ContextKeyUserID, id.String())
	got, ok = GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	c.Set(constants.ContextKeyUserID, 42)
	_, ok = GetUserID(c)
	assert.False(t, ok)
}
