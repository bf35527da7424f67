package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateJWT(42, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := parseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, testSecret)
	require.NoError(t, err)

	_, err = parseToken(token, "some-other-secret")
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  42,
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = parseToken(signed, testSecret)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := parseToken("not-a-token", testSecret)
	assert.Error(t, err)
}

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTMiddleware(testSecret))
	r.GET("/whoami", func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user id in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	return r
}

func TestJWTMiddleware_SetsUserID(t *testing.T) {
	r := setupProtectedRouter()
	token, err := GenerateJWT(7, testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id": 7}`, w.Body.String())
}

func TestJWTMiddleware_RejectsBadHeaders(t *testing.T) {
	r := setupProtectedRouter()
	token, _ := GenerateJWT(7, testSecret)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no scheme", token},
		{"wrong scheme", "Basic " + token},
		{"garbage token", "Bearer nonsense"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
