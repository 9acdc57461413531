package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"BistroBoss/services"

	"github.com/gin-gonic/gin"
)

func authTestRouter(tokenService *services.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/guarded", AuthMiddleware(tokenService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return router
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := authTestRouter(services.NewTokenService("test-secret"))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	router.ServeHTTP(recorder, request)

	assertUnauthorized(t, recorder)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	router := authTestRouter(services.NewTokenService("test-secret"))

	for _, header := range []string{"token-without-scheme", "Basic abc123"} {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		request.Header.Set("Authorization", header)
		router.ServeHTTP(recorder, request)

		assertUnauthorized(t, recorder)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router := authTestRouter(services.NewTokenService("test-secret"))

	signed, err := services.NewTokenService("other-secret").Generate("diner@example.com")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	request.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(recorder, request)

	assertUnauthorized(t, recorder)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	tokenService := services.NewTokenService("test-secret")
	router := authTestRouter(tokenService)

	signed, err := tokenService.Generate("diner@example.com")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	request.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["email"] != "diner@example.com" {
		t.Fatalf("expected email in context, got %q", body["email"])
	}
}

func assertUnauthorized(t *testing.T, recorder *httptest.ResponseRecorder) {
	t.Helper()
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", recorder.Code)
	}
	var body struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Error || body.Message != "unauthorized access" {
		t.Fatalf("unexpected body: %s", recorder.Body.String())
	}
}
