// File: internal/handler/auth/login.go
package auth

import (
	"fmt"
	"net/http"
	"time"

	"taste-of-aloha/internal/api"
	"taste-of-aloha/internal/model"
	"taste-of-aloha/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	authenticateStaff = service.AuthenticateStaff
	issueAccessToken  = service.IssueAccessToken
)

// LoginHandler 使用員工帳號密碼驗證並回傳 JWT
// @Summary     員工登入
// @Description 使用 Username 與 Password 進行驗證，回傳存取令牌與到期時間
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Accept      json
// @Produce     json
// @Param       username formData string true "員工帳號"
// @Param       password formData string true "員工密碼"
// @Success     200      {object} api.LoginResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     401      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(staff model.Staff, secret string, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: fmt.Sprintf("invalid form data: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := authenticateStaff(staff, req.Username, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, expiresAt, err := issueAccessToken(secret, staff, ttl)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token", Error: err.Error()})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresAt:   expiresAt,
		})
	}
}
