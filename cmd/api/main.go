package main

// @title Restaurant Finder API
// @version 1.0.0
// @description Поиск ресторанов, кафе, пабов и фастфуда по данным OpenStreetMap.
// @description Адреса геокодируются через Nominatim, заведения запрашиваются у Overpass API.
// @description
// @description Основные возможности:
// @description - Поиск заведений рядом с координатами или адресом
// @description - Фильтр по кухне или ключевому слову
// @description - Подробности о заведении через обратное геокодирование
// @description - Текстовый формат ответа (format=text)

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/restaurant-finder/docs"
	"github.com/restaurant-finder/internal/config"
	httpDelivery "github.com/restaurant-finder/internal/delivery/http"
	"github.com/restaurant-finder/internal/delivery/http/handler"
	"github.com/restaurant-finder/internal/infrastructure/nominatim"
	"github.com/restaurant-finder/internal/infrastructure/overpass"
	"github.com/restaurant-finder/internal/pkg/logger"
	"github.com/restaurant-finder/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Restaurant Finder")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("nominatim", cfg.Nominatim.BaseURL),
		zap.String("overpass", cfg.Overpass.URL),
	)

	// 3. Remote clients
	geocoder := nominatim.NewNominatimClient(&cfg.Nominatim, log)
	features := overpass.NewOverpassClient(&cfg.Overpass, log)

	// 4. Use case
	restaurantUC := usecase.NewRestaurantUseCase(geocoder, features, cfg.Search, log)

	// 5. HTTP
	restaurantHandler := handler.NewRestaurantHandler(restaurantUC, log)
	server := httpDelivery.NewServer(cfg, log, restaurantHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
