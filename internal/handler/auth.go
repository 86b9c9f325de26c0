package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"zoo-api/internal/config"
	"zoo-api/internal/middleware"
	"zoo-api/internal/model"
	"zoo-api/internal/repository"
	"zoo-api/internal/utils"
)

// AuthHandler bundles the dependencies of the auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Tokens *repository.TokenRepo
}

func NewAuthHandler(cfg config.Config, users *repository.UserRepo, tokens *repository.TokenRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, Tokens: tokens}
}

type registerUserReq struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type userPart struct {
	ID       uint64   `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}
type authPayload struct {
	User    userPart  `json:"user"`
	Access  tokenPart `json:"access"`
	Refresh tokenPart `json:"refresh"`
}

func (h *AuthHandler) issuePair(c echo.Context, u *model.User) (*authPayload, error) {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Roles, h.Cfg.AccessTTLMin)
	if err != nil {
		return nil, err
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return nil, err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Tokens.StoreRefresh(ctx, u.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return nil, err
	}
	return &authPayload{
		User:    userPart{ID: u.ID, Username: u.Username, Roles: u.Roles},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, // raw goes back to the client once
	}, nil
}

// Register creates a login account with explicit roles.  The route is
// gated to ADMIN; visitors self-register through POST /visitantes.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerUserReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || len(req.Password) < 6 {
		return respondError(c, http.StatusBadRequest, "username e password (mínimo 6 caracteres) são obrigatórios")
	}
	roles := make([]string, 0, len(req.Roles))
	for _, r := range req.Roles {
		roles = append(roles, strings.ToUpper(strings.TrimSpace(r)))
	}
	if len(roles) == 0 {
		roles = []string{model.RoleVisitante}
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return fail(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	uid, err := h.Users.Create(ctx, req.Username, hash, roles)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return respondError(c, http.StatusConflict, "username já cadastrado")
		}
		return fail(c, err)
	}
	return respond(c, http.StatusCreated, "usuário criado com sucesso", userPart{ID: uid, Username: req.Username, Roles: roles})
}

// Login verifies the credentials and returns a fresh token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return respondError(c, http.StatusBadRequest, "username e password são obrigatórios")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return respondError(c, http.StatusUnauthorized, "credenciais inválidas")
		}
		return fail(c, err)
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return respondError(c, http.StatusUnauthorized, "credenciais inválidas")
	}

	payload, err := h.issuePair(c, u)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "login efetuado com sucesso", payload)
}

// Refresh rotates the refresh token: the presented token is validated
// by hash, revoked, and a new pair is issued.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return respondError(c, http.StatusBadRequest, "refresh_token é obrigatório")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	hash := utils.HashRefreshRaw(req.RefreshToken)
	uid, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "refresh token inválido ou expirado")
	}
	if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
		return fail(c, err)
	}
	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return fail(c, err)
	}
	payload, err := h.issuePair(c, u)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "token renovado com sucesso", payload)
}

// Logout revokes every refresh token of the authenticated user.
func (h *AuthHandler) Logout(c echo.Context) error {
	uid, ok := c.Get(middleware.CtxUserID).(uint64)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "não autenticado")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Tokens.RevokeAllForUser(ctx, uid); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "sessões encerradas", nil)
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, ok := c.Get(middleware.CtxUserID).(uint64)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "não autenticado")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "usuário autenticado", userPart{ID: u.ID, Username: u.Username, Roles: u.Roles})
}
