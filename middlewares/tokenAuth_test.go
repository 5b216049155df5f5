package middlewares

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"PALS/utils"
)

func contextWithRole(t *testing.T, role string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest("GET", "/", nil)
	if role != "" {
		req = req.WithContext(context.WithValue(req.Context(), userRoleKey, role))
	}
	c.Request = req
	return c, w
}

func TestRoleAuthMiddlewareAllowsMatchingRole(t *testing.T) {
	c, _ := contextWithRole(t, utils.RoleDoctor)

	RoleAuthMiddleware(utils.RoleDoctor)(c)

	assert.False(t, c.IsAborted())
}

func TestRoleAuthMiddlewareRejectsOtherRole(t *testing.T) {
	c, w := contextWithRole(t, utils.RolePatient)

	RoleAuthMiddleware(utils.RoleDoctor)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, 403, w.Code)
}

func TestRoleAuthMiddlewareRequiresContextRole(t *testing.T) {
	c, w := contextWithRole(t, "")

	RoleAuthMiddleware(utils.RoleDoctor)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, 401, w.Code)
}

func TestExtractUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), userIDKey, "doc-1")

	userID, err := ExtractUserIDFromContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "doc-1", userID)

	_, err = ExtractUserIDFromContext(context.Background())
	assert.Error(t, err)
}
