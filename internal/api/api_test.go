package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pantry-finder/backend/internal/middleware"
	"github.com/pageza/pantry-finder/backend/internal/mocks"
	"github.com/pageza/pantry-finder/backend/internal/types"
)

const testToken = "valid-token"

type testEnv struct {
	router  *gin.Engine
	recipes *mocks.MockRecipeService
	userID  uuid.UUID
}

func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		recipes: &mocks.MockRecipeService{},
		userID:  uuid.New(),
	}
	auth := &mocks.MockAuthService{}
	auth.On("ValidateToken", testToken).Return(&types.TokenClaims{UserID: env.userID, Username: "cook"}, nil)
	auth.On("ValidateToken", mock.Anything).Return(nil, assertErr("bad token"))

	env.router = gin.New()
	env.router.Use(middleware.ErrorHandler())
	env.router.GET("/health", HealthCheck)
	v1 := env.router.Group("/api/v1")
	NewRecipeHandler(env.recipes, auth, nil).RegisterRoutes(v1)
	NewSearchHandler(env.recipes, nil).RegisterRoutes(v1)

	t.Cleanup(func() { env.recipes.AssertExpectations(t) })
	return env
}

type assertErr string

func (e assertErr) Error() string { return string(e) }

func (env *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}
