package main

import (
	"context"
	"log"

	"foodrun/authtoken"
	"foodrun/config"
	httpapi "foodrun/storage-svc/internal/api/http"
	"foodrun/storage-svc/internal/service"
	"foodrun/storage-svc/internal/storage"
	"foodrun/stream"
)

func main() {
	config.LoadEnv()
	ctx := context.Background()

	db := config.MustInitPostgres()
	defer db.Close()

	orders := storage.NewPostgresRepository(db)
	if err := orders.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	catalogDB := config.MustInitMongo()
	defer catalogDB.Client().Disconnect(ctx)
	catalog := storage.NewMongoCatalog(catalogDB)

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(config.GetEnv("ORDERS_TOPIC", "orders"))
	defer writer.Close()

	tokens, err := authtoken.NewManager(config.GetEnv("JWT_SECRET", ""), authtoken.DefaultTTL)
	if err != nil {
		log.Fatal("Failed to configure tokens:", err)
	}

	hub := stream.NewPGHub(stream.NewPGListener(config.PostgresConnString()))
	defer hub.Close()
	go hub.Run(ctx)

	qr := service.DefaultQRGenerator{BaseURL: config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080")}

	catalogService := service.NewCatalogService(catalog)
	orderService := service.NewOrderService(orders, catalog, storage.NewKafkaPublisher(writer), hub, qr)

	handler := httpapi.NewHandler(catalogService, orderService, tokens, authtoken.NewRedisRevocations(rdb))
	httpapi.StartServer(":"+config.GetEnv("PORT", "8082"), httpapi.NewRouter(handler))
}
