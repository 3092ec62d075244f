package http

import (
	"errors"
	"net/http"
	"time"

	"radsafe-backend/internal/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	tokens   *auth.TokenService
	operator *auth.Operator
}

// NewAuthHandler: either argument may be nil, in which case login answers 503.
func NewAuthHandler(tokens *auth.TokenService, operator *auth.Operator) *AuthHandler {
	return &AuthHandler{tokens: tokens, operator: operator}
}

type loginReq struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

type tokenResp struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	if h.tokens == nil || h.operator == nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "authentication not configured"})
	}
	var req loginReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	if err := h.operator.Check(req.Username, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		}
		return respondError(c, nil, err)
	}
	tok, exp, err := h.tokens.Issue(req.Username)
	if err != nil {
		return respondError(c, nil, err)
	}
	return c.JSON(http.StatusOK, tokenResp{AccessToken: tok, TokenType: "Bearer", ExpiresAt: exp})
}

// Me echoes the subject of the bearer token; mount behind RequireAuth.
func (h *AuthHandler) Me(c echo.Context) error {
	who := auth.ActorFromContext(c.Request().Context())
	if who == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: auth.ErrInvalidToken.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"username": *who})
}
