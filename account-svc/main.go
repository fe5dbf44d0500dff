package main

import (
	"context"
	"log"

	httpapi "foodrun/account-svc/internal/api/http"
	"foodrun/account-svc/internal/service"
	"foodrun/account-svc/internal/storage"
	"foodrun/authtoken"
	"foodrun/config"
	"foodrun/stream"
)

func main() {
	config.LoadEnv()
	ctx := context.Background()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	objects, err := config.NewObjectStore(ctx)
	if err != nil {
		log.Fatal("Failed to configure object storage:", err)
	}

	tokens, err := authtoken.NewManager(config.GetEnv("JWT_SECRET", ""), authtoken.DefaultTTL)
	if err != nil {
		log.Fatal("Failed to configure tokens:", err)
	}

	hub := stream.NewPGHub(stream.NewPGListener(config.PostgresConnString()))
	defer hub.Close()
	go hub.Run(ctx)

	denylist := storage.NewRedisDenylist(rdb)
	pictures := storage.NewS3PictureStore(objects.Client, objects.Bucket, objects.BaseURL)
	accounts := service.NewAccountService(repository, denylist, pictures, tokens, hub)

	handler := httpapi.NewHandler(accounts, tokens, denylist)
	httpapi.StartServer(":"+config.GetEnv("PORT", "8081"), httpapi.NewRouter(handler))
}
