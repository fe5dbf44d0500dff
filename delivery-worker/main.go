package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"foodrun/config"
	"foodrun/delivery-worker/internal/service"
	"foodrun/delivery-worker/internal/storage"
)

func main() {
	config.LoadEnv()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.GetEnv("ORDERS_TOPIC", "orders"), "delivery-worker")
	defer reader.Close()

	writer := config.NewKafkaWriter(config.GetEnv("NOTIFICATIONS_TOPIC", "notifications"))
	defer writer.Close()

	scheduler := service.NewScheduler(ctx, storage.NewPostgresStore(db), storage.NewRedisDueSet(rdb), storage.NewKafkaNotifier(writer), nil)
	defer scheduler.Stop()

	restored, err := scheduler.Restore(ctx)
	if err != nil {
		log.Fatal("Failed to restore pending deliveries:", err)
	}
	log.Printf("Restored %d pending deliveries", restored)

	service.NewConsumer(reader, scheduler).Start(ctx)
}
