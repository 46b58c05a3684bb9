package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/payetonkawa/clients-api/internal/core/domain"
	"github.com/payetonkawa/clients-api/internal/core/ports"
)

// TokenHandler handles POST /token.
//
// The role assignment policy is deliberately simplistic: the username "admin"
// receives the admin role, every other username receives the user role, and
// the password is not checked. This is a stand-in for a real identity
// provider on a trusted internal boundary, not production authentication.
type TokenHandler struct {
	issuer ports.TokenIssuer
}

func NewTokenHandler(issuer ports.TokenIssuer) *TokenHandler {
	return &TokenHandler{issuer: issuer}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Issue authenticates a form-encoded username/password pair and returns a
// bearer token.
//
// @Summary      Obtain an access token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  tokenResponse
// @Failure      400  {object}  errorResponse
// @Router       /token [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	username := c.FormValue("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username is required")
	}

	role := domain.RoleUser
	if username == "admin" {
		role = domain.RoleAdmin
	}

	token, err := h.issuer.Issue(username, role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
