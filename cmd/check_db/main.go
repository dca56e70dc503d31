package main

import (
	"context"
	"fmt"

	"book-office/internal/app/config"
	"book-office/internal/app/dsn"
	"book-office/internal/app/repository"
	"book-office/internal/app/storage"

	"github.com/sirupsen/logrus"
)

func main() {
	ctx := context.Background()

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
		logrus.Fatal("Failed to connect to database:", err)
	}

	services, err := repo.ListServices(ctx, "")
	if err != nil {
		logrus.Fatal("Failed to get services:", err)
	}

	// если MinIO настроен, заодно проверяем, что картинки действительно лежат в бакете
	var minioClient *storage.MinIOClient
	if cfg.Minio.Endpoint != "" {
		minioClient, err = storage.NewMinIOClient(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.Bucket,
			cfg.Minio.PublicURL,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			logrus.Warnf("MinIO check skipped: %v", err)
		}
	}

	fmt.Println("Active services in database:")
	for _, service := range services {
		imageURL := "NULL"
		if service.ImageURL != "" {
			imageURL = service.ImageURL
		}
		fmt.Printf("ID: %d, Title: %s, Price: %s, ImageURL: %s", service.ID, service.Title, service.Price, imageURL)

		if minioClient != nil && service.ImageURL != "" {
			exists, err := minioClient.FileExists(ctx, storage.ObjectKey(service.ImageURL))
			switch {
			case err != nil:
				fmt.Printf(" (image check failed: %v)", err)
			case !exists:
				fmt.Print(" (image missing in bucket)")
			}
		}
		fmt.Println()
	}
}
