// File: internal/service/authentication.go
package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"taste-of-aloha/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingSecret      = errors.New("token secret not configured")
)

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

const tokenIssuer = "taste-of-aloha"

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthenticateStaff 驗證帳號與明文密碼；未設定密碼哈希時一律拒絕
func AuthenticateStaff(staff model.Staff, username, password string) error {
	if staff.PasswordHash == "" {
		return ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(staff.Username), []byte(username)) != 1 {
		return ErrInvalidCredentials
	}
	if err := ComparePassword(staff.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueAccessToken 依據員工帳號與 TTL 產生 HS256 JWT，並回傳到期時間
func IssueAccessToken(secret string, staff model.Staff, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, ErrMissingSecret
	}

	now := timeNow()
	expiresAt := now.Add(ttl)
	claims := CustomClaims{
		Username: staff.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   staff.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// VerifyAccessToken 驗證並解析 JWT 令牌
func VerifyAccessToken(secret, tokenString string) (*CustomClaims, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(timeNow))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
