package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Jgauri24/fitfusion-backend/config"
	"github.com/Jgauri24/fitfusion-backend/routes"
	"github.com/Jgauri24/fitfusion-backend/services"
)

func main() {
	config.InitDB()
	config.InitMongo()

	gw := services.NewRecordGateway(config.DB, config.Mongo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seeder := services.NewSeederService(gw, services.LoadSeederConfig())
	seeder.Start(ctx)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(gw)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
