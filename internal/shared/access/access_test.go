package access

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupRouter(roles ...Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/guarded", Require(roles...), func(c *gin.Context) {
		role, _ := FromContext(c)
		c.String(http.StatusOK, string(role))
	})
	return router
}

func doRequest(router *gin.Engine, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if role != "" {
		req.Header.Set(RoleHeader, role)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequire_AllowsListedRole(t *testing.T) {
	router := setupRouter(RoleStaff, RoleManager)

	rec := doRequest(router, "staff")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "staff", rec.Body.String())
}

func TestRequire_NormalizesHeaderValue(t *testing.T) {
	router := setupRouter(RoleManager)

	rec := doRequest(router, "  Manager ")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "manager", rec.Body.String())
}

func TestRequire_MissingHeaderIsUnauthorized(t *testing.T) {
	router := setupRouter(RoleStaff)

	rec := doRequest(router, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
}

func TestRequire_UnknownRoleIsUnauthorized(t *testing.T) {
	router := setupRouter(RoleStaff)

	rec := doRequest(router, "admin")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequire_UnlistedRoleIsForbidden(t *testing.T) {
	router := setupRouter(RoleManager)

	rec := doRequest(router, "customer")
	require.Equal(t, http.StatusForbidden, rec.Code)
}
