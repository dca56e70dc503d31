package api

import (
	"context"
	"time"

	"book-office/internal/app/config"
	"book-office/internal/app/dsn"
	"book-office/internal/app/handler"
	"book-office/internal/app/middleware"
	"book-office/internal/app/redis"
	"book-office/internal/app/repository"
	"book-office/internal/app/storage"
	"book-office/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ошибка чтения конфигурации: %v", err)
	}

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		logrus.Fatal("DSN string is empty. Check your .env file")
	}

	repo, err := repository.New(dsnStr)
	if err != nil {
		logrus.Fatalf("ошибка инициализации репозитория: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		logrus.Fatalf("ошибка подключения к Redis: %v", err)
	}
	defer redisClient.Close()

	var blobStorage handler.BlobStorage
	minioClient, err := storage.NewMinIOClient(ctx,
		cfg.Minio.Endpoint,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.Bucket,
		cfg.Minio.PublicURL,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		// без MinIO сервис работает, но операции с картинками отдают 500
		logrus.Errorf("ошибка подключения к MinIO: %v", err)
	} else {
		blobStorage = minioClient
	}

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	h := handler.NewHandler(repo, blobStorage, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, repo, cfg)

	application := pkg.NewApp(cfg, gin.Default(), h, authMiddleware)
	application.RunApp()
}
