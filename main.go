package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"venue-webapp/apiclient"
	"venue-webapp/config"
	"venue-webapp/handlers"
	"venue-webapp/metrics"
	"venue-webapp/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	m := metrics.New()
	client := apiclient.New(cfg.APIBaseURL, time.Duration(cfg.APITimeout)*time.Second, m)
	handlers.Setup(cfg, client)

	go func() {
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(cfg.MetricsAddr, nil); err != nil {
			log.Printf("metrics listener stopped: %v", err)
		}
	}()

	app := fiber.New()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(cfg.ListenAddr))
}
