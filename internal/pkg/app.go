package pkg

import (
	"context"
	"fmt"
	"time"

	"book-office/docs"
	"book-office/internal/app/config"
	"book-office/internal/app/handler"
	"book-office/internal/app/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
)

type Application struct {
	Config         *config.Config
	Router         *gin.Engine
	Handler        *handler.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.Handler, am *middleware.AuthMiddleware) *Application {
	return &Application{
		Config:         c,
		Router:         r,
		Handler:        h,
		AuthMiddleware: am,
	}
}

// SetupRoutes навешивает общие middleware и регистрирует все маршруты
func (a *Application) SetupRoutes() {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	if len(a.Config.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = a.Config.CORS.AllowOrigins
	} else {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	}
	a.Router.Use(cors.New(corsConfig))
	a.Router.Use(middleware.Metrics())

	loginLimiter := middleware.NewIPRateLimiter(rate.Limit(a.Config.Session.LoginRate), a.Config.Session.LoginBurst)
	loginLimiter.StartCleanup(context.Background(), time.Minute)
	a.Handler.RegisterAPIRoutes(a.Router, a.AuthMiddleware, loginLimiter)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	a.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	a.SetupRoutes()

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Server down")
}
