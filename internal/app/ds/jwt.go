package ds

import (
	"github.com/golang-jwt/jwt"
)

// JWTClaims - содержимое bearer-токена: ссылка на сессию в Redis
type JWTClaims struct {
	jwt.StandardClaims
	SessionID string `json:"session_id"`
	Username  string `json:"username"`
}
