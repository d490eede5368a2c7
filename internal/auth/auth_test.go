package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "channel-relay/internal/errors"
	"channel-relay/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-key-for-jwt-operations"

func TestNewAuthService_RequiresSecret(t *testing.T) {
	_, err := NewAuthService("", time.Hour)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestJWTOperations(t *testing.T) {
	service, err := NewAuthService(testSecret, 30*time.Minute)
	require.NoError(t, err)

	// Test token generation
	token, err := service.GenerateJWT(12345)
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), token.ExpiresAt, 5*time.Second)

	// Test token validation
	claims, err := service.ValidateJWT(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), claims.UserID)
	assert.Equal(t, "12345", claims.Subject)
	assert.Equal(t, "channel-relay", claims.Issuer)

	// Test invalid token
	_, err = service.ValidateJWT("invalid-token")
	assert.True(t, apperrors.IsAuthentication(err))
}

func TestGenerateJWT_ZeroUser(t *testing.T) {
	service, err := NewAuthService(testSecret, time.Hour)
	require.NoError(t, err)

	_, err = service.GenerateJWT(0)
	assert.True(t, apperrors.IsValidation(err))
}

func TestJWTExpiration(t *testing.T) {
	service, err := NewAuthService(testSecret, time.Minute)
	require.NoError(t, err)
	service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := service.GenerateJWT(1)
	require.NoError(t, err)

	service.now = time.Now
	_, err = service.ValidateJWT(token.AccessToken)
	assert.Error(t, err)
}

func TestValidateJWT_WrongSecretOrMethod(t *testing.T) {
	service, err := NewAuthService(testSecret, time.Hour)
	require.NoError(t, err)
	other, err := NewAuthService("another-secret", time.Hour)
	require.NoError(t, err)

	token, err := other.GenerateJWT(1)
	require.NoError(t, err)
	_, err = service.ValidateJWT(token.AccessToken)
	assert.Error(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{UserID: 1})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = service.ValidateJWT(raw)
	assert.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, err := NewAuthService(testSecret, time.Hour)
	require.NoError(t, err)
	token, err := service.GenerateJWT(42)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", NewAuthMiddleware(service).RequireAuth(), func(c *gin.Context) {
		id, ok := GetUserID(c)
		claims, _ := GetAuthClaims(c)
		ctxUser, _ := logger.UserFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": id, "ok": ok, "sub": claims.Subject, "ctx_user": ctxUser})
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "valid token", header: "Bearer " + token.AccessToken, status: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + token.AccessToken, status: http.StatusOK},
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "scheme without token", header: "Bearer ", status: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"user_id":42`)
				assert.Contains(t, rec.Body.String(), `"ctx_user":42`)
			}
		})
	}
}

func TestRequireAuth_LogsRejectionWithRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, err := NewAuthService(testSecret, time.Hour)
	require.NoError(t, err)
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), "req-1"))
		c.Next()
	})
	router.GET("/me", NewAuthMiddleware(service).RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Request rejected by auth", entry.Message)
	assert.Equal(t, "req-1", entry.Data["request_id"])
	assert.Equal(t, "malformed header", entry.Data["reason"])
}
