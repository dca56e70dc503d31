package middleware

import (
	"book-office/internal/app/ds"

	"github.com/gin-gonic/gin"
)

const (
	currentUserKey = "current_user"
	sessionIDKey   = "session_id"
)

func setPrincipal(c *gin.Context, user *ds.User, sessionID string) {
	c.Set(currentUserKey, user)
	c.Set(sessionIDKey, sessionID)
}

// CurrentUser извлекает пользователя из контекста; nil - аноним
func CurrentUser(c *gin.Context) *ds.User {
	if user, exists := c.Get(currentUserKey); exists {
		if u, ok := user.(*ds.User); ok {
			return u
		}
	}
	return nil
}

// SessionID - токен сессии текущего запроса
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
