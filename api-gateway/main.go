package main

import (
	"log"
	"net/http"

	"foodrun/api-gateway/internal/gateway"
	"foodrun/config"

	"github.com/rs/cors"
)

func main() {
	config.LoadEnv()

	gw := gateway.NewGateway(gateway.Config{
		AccountSvcURL: config.GetEnv("ACCOUNT_SVC_URL", "http://localhost:8081"),
		StorageSvcURL: config.GetEnv("STORAGE_SVC_URL", "http://localhost:8082"),
		SpendSvcURL:   config.GetEnv("SPEND_SVC_URL", "http://localhost:8083"),
		FrontendDir:   config.GetEnv("FRONTEND_DIR", "./frontend"),
	}, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	addr := ":" + config.GetEnv("PORT", "8080")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
