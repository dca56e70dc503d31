package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"book-office/internal/app/config"
	"book-office/internal/app/ds"
	"book-office/internal/app/dto"
	"book-office/internal/app/middleware"
	"book-office/internal/app/redis"
	"book-office/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// SessionStore - хранилище сессий: токен -> логин
type SessionStore interface {
	SaveSession(ctx context.Context, token, username string, ttl time.Duration) error
	DeleteSession(ctx context.Context, token string) error
}

type AuthHandler struct {
	Repository Repository
	Sessions   SessionStore
	Config     *config.Config
}

func NewAuthHandler(r Repository, sessions SessionStore, cfg *config.Config) *AuthHandler {
	registerJSONTagNames()
	return &AuthHandler{
		Repository: r,
		Sessions:   sessions,
		Config:     cfg,
	}
}

// SignUp регистрация нового пользователя
// @Summary Регистрация пользователя
// @Tags Users
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.SignUpRequest true "Данные для регистрации"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /users/sign_up [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	hash, ok := hashPassword(c, req.Password)
	if !ok {
		return
	}

	user := &ds.User{
		Username: req.Username,
		Password: hash,
		Email:    req.Email,
	}
	err := h.Repository.CreateUser(c.Request.Context(), user)
	if errors.Is(err, repository.ErrDuplicate) {
		validationError(c, map[string]string{"username": "пользователь с таким логином уже существует"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	logrus.Infof("user %q signed up", user.Username)
	c.JSON(http.StatusCreated, toUserResponse(user))
}

// LogIn вход в систему
// @Summary Вход в систему
// @Description Создает сессию, ставит cookie session_id и возвращает bearer-токен со ссылкой на ту же сессию
// @Tags Users
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.LoginRequest true "Логин и пароль"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /users/log_in [post]
func (h *AuthHandler) LogIn(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	user, err := h.Repository.GetUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		internalError(c, err)
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		validationError(c, map[string]string{"non_field_errors": "неверный логин или пароль"})
		return
	}

	ttl := h.Config.Session.TTL
	sessionID := uuid.NewString()
	if err := h.Sessions.SaveSession(ctx, sessionID, user.Username, ttl); err != nil {
		internalError(c, err)
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, &ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "book-office",
		},
		SessionID: sessionID,
		Username:  user.Username,
	})
	accessToken, err := token.SignedString([]byte(h.Config.JWT.Token))
	if err != nil {
		internalError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Config.Session.CookieName, sessionID, int(ttl.Seconds()), "/", "", h.Config.Session.SecureCookie, true)

	c.JSON(http.StatusOK, dto.LoginResponse{
		Status:    "success",
		User:      toUserResponse(user),
		Token:     accessToken,
		TokenType: "Bearer",
		ExpiresIn: int(h.Config.JWT.ExpiresIn.Seconds()),
	})
}

// LogOut выход из системы
// @Summary Выход из системы
// @Description Удаляет текущую сессию
// @Tags Users
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /users/log_out [post]
func (h *AuthHandler) LogOut(c *gin.Context) {
	err := h.Sessions.DeleteSession(c.Request.Context(), middleware.SessionID(c))
	if errors.Is(err, redis.ErrSessionNotFound) {
		errorResponse(c, http.StatusForbidden, "сессия не найдена")
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	c.SetCookie(h.Config.Session.CookieName, "", -1, "/", "", h.Config.Session.SecureCookie, true)
	successResponse(c, http.StatusOK, "пользователь вышел из системы", nil)
}

// Me возвращает профиль текущего пользователя
// @Summary Профиль пользователя
// @Tags Users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, toUserResponse(middleware.CurrentUser(c)))
}

// UpdateProfile меняет почту и/или пароль текущего пользователя
// @Summary Обновление профиля
// @Tags Users
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.UpdateUserRequest true "Новые почта и пароль"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /users/update [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	upd := repository.UserUpdate{Email: req.Email}
	if req.Password != nil {
		hash, ok := hashPassword(c, *req.Password)
		if !ok {
			return
		}
		upd.PasswordHash = &hash
	}

	ctx := c.Request.Context()
	if err := h.Repository.UpdateUser(ctx, user.ID, upd); err != nil {
		internalError(c, err)
		return
	}

	updated, err := h.Repository.GetUserByID(ctx, user.ID)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(updated))
}

// hashPassword - bcrypt принимает не больше 72 байт; max=72 в DTO считает символы, а не байты
func hashPassword(c *gin.Context, password string) (string, bool) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		validationError(c, map[string]string{"password": "пароль длиннее 72 байт"})
		return "", false
	}
	if err != nil {
		internalError(c, err)
		return "", false
	}
	return string(hash), true
}
