package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"book-office/internal/app/config"
	"book-office/internal/app/ds"
	"book-office/internal/app/dto"
	"book-office/internal/app/redis"
	"book-office/internal/app/repository"
	"book-office/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
)

// SessionReader - хранилище сессий (Redis)
type SessionReader interface {
	SessionUsername(ctx context.Context, token string) (string, error)
}

// UserFinder - поиск пользователя по логину
type UserFinder interface {
	GetUserByUsername(ctx context.Context, username string) (*ds.User, error)
}

type AuthMiddleware struct {
	Sessions SessionReader
	Users    UserFinder
	Config   *config.Config
}

func NewAuthMiddleware(sessions SessionReader, users UserFinder, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		Sessions: sessions,
		Users:    users,
		Config:   cfg,
	}
}

// WithAuthCheck пропускает только авторизованных пользователей с одной из ролей.
// Без ролей достаточно любой действующей сессии.
func (am *AuthMiddleware) WithAuthCheck(assignedRoles ...role.Role) gin.HandlerFunc {
	return gin.HandlerFunc(func(gCtx *gin.Context) {
		user, sessionID, err := am.resolve(gCtx)
		if err != nil {
			backendFailure(gCtx, err)
			return
		}
		if user == nil {
			forbidden(gCtx, "требуется авторизация")
			return
		}

		if len(assignedRoles) > 0 && !hasRequiredRole(role.Of(user), assignedRoles) {
			forbidden(gCtx, "недостаточно прав")
			return
		}

		setPrincipal(gCtx, user, sessionID)
		gCtx.Next()
	})
}

// WithOptionalAuth определяет пользователя, если сессия есть, и пропускает запрос в любом случае
func (am *AuthMiddleware) WithOptionalAuth() gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		user, sessionID, err := am.resolve(gCtx)
		if err != nil {
			backendFailure(gCtx, err)
			return
		}
		if user != nil {
			setPrincipal(gCtx, user, sessionID)
		}
		gCtx.Next()
	}
}

// resolve находит пользователя по токену сессии.
// nil без ошибки - сессии нет или она недействительна; ошибка - недоступен Redis или БД
func (am *AuthMiddleware) resolve(gCtx *gin.Context) (*ds.User, string, error) {
	sessionID := am.sessionToken(gCtx)
	if sessionID == "" {
		return nil, "", nil
	}

	ctx := gCtx.Request.Context()
	username, err := am.Sessions.SessionUsername(ctx, sessionID)
	if errors.Is(err, redis.ErrSessionNotFound) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("session lookup: %w", err)
	}

	user, err := am.Users.GetUserByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		logrus.Warnf("session %s points to missing user %q", sessionID, username)
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("user lookup: %w", err)
	}

	return user, sessionID, nil
}

// sessionToken берет токен из cookie, а для bearer-варианта - из JWT в заголовке Authorization
func (am *AuthMiddleware) sessionToken(gCtx *gin.Context) string {
	if sessionID, err := gCtx.Cookie(am.Config.Session.CookieName); err == nil && sessionID != "" {
		return sessionID
	}

	jwtStr := gCtx.GetHeader("Authorization")
	if !strings.HasPrefix(jwtStr, "Bearer ") {
		return ""
	}
	jwtStr = strings.TrimPrefix(jwtStr, "Bearer ")

	claims, err := am.parseJWTToken(jwtStr)
	if err != nil {
		return ""
	}
	return claims.SessionID
}

// parseJWTToken парсит и валидирует JWT токен
func (am *AuthMiddleware) parseJWTToken(tokenString string) (*ds.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(am.Config.JWT.Token), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	return claims, nil
}

// hasRequiredRole проверяет, есть ли у пользователя необходимая роль
func hasRequiredRole(userRole role.Role, requiredRoles []role.Role) bool {
	for _, requiredRole := range requiredRoles {
		if userRole == requiredRole {
			return true
		}
	}
	return false
}

func backendFailure(gCtx *gin.Context, err error) {
	logrus.Errorf("%s %s: %v", gCtx.Request.Method, gCtx.Request.URL.Path, err)
	gCtx.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
		Status:  "fail",
		Message: "внутренняя ошибка сервера",
	})
}

func forbidden(gCtx *gin.Context, message string) {
	gCtx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}
