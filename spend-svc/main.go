package main

import (
	"log"
	"time"

	"foodrun/authtoken"
	"foodrun/config"
	httpapi "foodrun/spend-svc/internal/api/http"
	"foodrun/spend-svc/internal/service"
	"foodrun/spend-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	location, err := time.LoadLocation(config.GetEnv("SPEND_TIMEZONE", "Local"))
	if err != nil {
		log.Fatal("Failed to load timezone:", err)
	}

	tokens, err := authtoken.NewManager(config.GetEnv("JWT_SECRET", ""), authtoken.DefaultTTL)
	if err != nil {
		log.Fatal("Failed to configure tokens:", err)
	}

	spending := service.NewSpendService(storage.NewPostgresOrders(db), storage.NewRedisCache(rdb), location)

	handler := httpapi.NewHandler(spending, tokens, authtoken.NewRedisRevocations(rdb))
	httpapi.StartServer(":"+config.GetEnv("PORT", "8083"), httpapi.NewRouter(handler))
}
