package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo-api/internal/model"
	"zoo-api/internal/utils"
)

const testSecret = "segredo-de-teste"

func runProtected(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/habitats", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTAuth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, c
}

func TestJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, []string{model.RoleAdmin, model.RoleFuncionario}, 15)
	require.NoError(t, err)

	rec, c := runProtected(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(7), c.Get(CtxUserID))
	assert.Equal(t, []string{model.RoleAdmin, model.RoleFuncionario}, c.Get(CtxRoles))
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, _ := runProtected(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token de acesso ausente")
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("outro-segredo", 7, []string{model.RoleVisitante}, 15)
	require.NoError(t, err)

	rec, _ := runProtected(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, []string{model.RoleVisitante}, -1)
	require.NoError(t, err)

	rec, _ := runProtected(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	run := func(held []string, allowed ...string) int {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/habitats", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if held != nil {
			c.Set(CtxRoles, held)
		}
		handler := RequireRole(allowed...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, run([]string{model.RoleAdmin}, model.RoleAdmin, model.RoleFuncionario))
	assert.Equal(t, http.StatusOK, run([]string{model.RoleVisitante, model.RoleFuncionario}, model.RoleFuncionario))
	assert.Equal(t, http.StatusForbidden, run([]string{model.RoleVisitante}, model.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, run(nil, model.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, run([]string{}, model.RoleAdmin))
}
