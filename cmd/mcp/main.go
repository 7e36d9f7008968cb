package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/restaurant-finder/internal/config"
	"github.com/restaurant-finder/internal/delivery/mcp"
	"github.com/restaurant-finder/internal/infrastructure/nominatim"
	"github.com/restaurant-finder/internal/infrastructure/overpass"
	"github.com/restaurant-finder/internal/pkg/logger"
	"github.com/restaurant-finder/internal/usecase"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// stdout занят протоколом MCP, логи только в stderr
	log, err := logger.New(cfg.Log.Level, logger.WithOutputPaths("stderr"))
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	geocoder := nominatim.NewNominatimClient(&cfg.Nominatim, log)
	features := overpass.NewOverpassClient(&cfg.Overpass, log)
	restaurantUC := usecase.NewRestaurantUseCase(geocoder, features, cfg.Search, log)

	server := mcp.NewServer(restaurantUC, log, version)
	if err := server.Serve(); err != nil {
		log.Fatal("MCP server stopped", zap.Error(err))
	}
}
