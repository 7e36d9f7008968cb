package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/restaurant-finder/internal/delivery/text"
	apperrors "github.com/restaurant-finder/internal/pkg/errors"
	"github.com/restaurant-finder/internal/usecase"
	"github.com/restaurant-finder/internal/usecase/dto"
)

const (
	ToolFindByLocation = "find_restaurants_by_location"
	ToolFindByAddress  = "find_restaurants_by_address"
	ToolGetDetails     = "get_restaurant_details"
	ToolSearchByQuery  = "search_restaurants_by_query"
)

// Server - MCP сервер с инструментами поиска заведений (stdio)
type Server struct {
	mcp          *server.MCPServer
	restaurantUC *usecase.RestaurantUseCase
	logger       *zap.Logger
}

// NewServer - создание MCP сервера и регистрация инструментов
func NewServer(restaurantUC *usecase.RestaurantUseCase, logger *zap.Logger, version string) *Server {
	s := &Server{
		mcp:          server.NewMCPServer("restaurant-finder", version, server.WithToolCapabilities(false)),
		restaurantUC: restaurantUC,
		logger:       logger,
	}

	s.mcp.AddTool(mcpgo.NewTool(ToolFindByLocation,
		mcpgo.WithDescription("Find nearby restaurants given latitude and longitude coordinates"),
		mcpgo.WithNumber("latitude", mcpgo.Required(), mcpgo.Description("Latitude coordinate")),
		mcpgo.WithNumber("longitude", mcpgo.Required(), mcpgo.Description("Longitude coordinate")),
		radiusOption(),
		limitOption(),
	), s.FindByLocation)

	s.mcp.AddTool(mcpgo.NewTool(ToolFindByAddress,
		mcpgo.WithDescription("Find nearby restaurants given an address or city name"),
		mcpgo.WithString("address", mcpgo.Required(), mcpgo.Description("Address or city name to search for")),
		radiusOption(),
		limitOption(),
	), s.FindByAddress)

	s.mcp.AddTool(mcpgo.NewTool(ToolGetDetails,
		mcpgo.WithDescription("Get detailed information about a specific restaurant"),
		mcpgo.WithNumber("latitude", mcpgo.Required(), mcpgo.Description("Latitude of the restaurant")),
		mcpgo.WithNumber("longitude", mcpgo.Required(), mcpgo.Description("Longitude of the restaurant")),
		mcpgo.WithString("name", mcpgo.Required(), mcpgo.Description("Name of the restaurant")),
	), s.GetDetails)

	s.mcp.AddTool(mcpgo.NewTool(ToolSearchByQuery,
		mcpgo.WithDescription("Search for restaurants by cuisine type or keyword in a given location"),
		mcpgo.WithString("query", mcpgo.Required(),
			mcpgo.Description("Cuisine type or keyword (e.g., 'italian', 'pizza', 'indian')")),
		mcpgo.WithString("address", mcpgo.Required(), mcpgo.Description("Address or city name to search in")),
		radiusOption(),
		limitOption(),
	), s.SearchByQuery)

	return s
}

func radiusOption() mcpgo.ToolOption {
	return mcpgo.WithNumber("radius",
		mcpgo.Description("Search radius in meters (default: 1000)"),
		mcpgo.DefaultNumber(1000))
}

func limitOption() mcpgo.ToolOption {
	return mcpgo.WithNumber("limit",
		mcpgo.Description("Maximum number of restaurants to return (default: 10)"),
		mcpgo.DefaultNumber(10))
}

// Serve блокируется, обслуживая протокол на stdin/stdout
func (s *Server) Serve() error {
	s.logger.Info("Starting MCP stdio server")
	return server.ServeStdio(s.mcp)
}

// FindByLocation - инструмент find_restaurants_by_location
func (s *Server) FindByLocation(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	args := request.Params.Arguments
	log := s.callLogger(request)

	lat, err := requiredNumber(args, "latitude")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	lon, err := requiredNumber(args, "longitude")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	radius, limit, err := radiusAndLimit(args)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	resp, err := s.restaurantUC.SearchByCoordinates(ctx, dto.CoordinateSearchRequest{
		Lat:    &lat,
		Lon:    &lon,
		Radius: radius,
		Limit:  limit,
	})
	if err != nil {
		return s.errorResult(log, err, ""), nil
	}

	return mcpgo.NewToolResultText(text.FormatList(resp)), nil
}

// FindByAddress - инструмент find_restaurants_by_address
func (s *Server) FindByAddress(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	args := request.Params.Arguments
	log := s.callLogger(request)

	address, err := requiredString(args, "address")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	radius, limit, err := radiusAndLimit(args)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	resp, err := s.restaurantUC.SearchByAddress(ctx, dto.AddressSearchRequest{
		Address: address,
		Radius:  radius,
		Limit:   limit,
	})
	if err != nil {
		return s.errorResult(log, err, address), nil
	}

	return mcpgo.NewToolResultText(text.FormatList(resp)), nil
}

// GetDetails - инструмент get_restaurant_details
func (s *Server) GetDetails(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	args := request.Params.Arguments
	log := s.callLogger(request)

	lat, err := requiredNumber(args, "latitude")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	lon, err := requiredNumber(args, "longitude")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	name, err := requiredString(args, "name")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	resp, err := s.restaurantUC.GetDetails(ctx, dto.DetailsRequest{Lat: &lat, Lon: &lon, Name: name})
	if err != nil {
		if errors.Is(err, apperrors.ErrDetailsUnavailable) {
			return mcpgo.NewToolResultText(text.DetailsUnavailable(name)), nil
		}
		return s.errorResult(log, err, ""), nil
	}

	return mcpgo.NewToolResultText(text.FormatDetails(resp)), nil
}

// SearchByQuery - инструмент search_restaurants_by_query
func (s *Server) SearchByQuery(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	args := request.Params.Arguments
	log := s.callLogger(request)

	query, err := requiredString(args, "query")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	address, err := requiredString(args, "address")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	radius, limit, err := radiusAndLimit(args)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	resp, err := s.restaurantUC.SearchByQuery(ctx, dto.QuerySearchRequest{
		Query:   query,
		Address: address,
		Radius:  radius,
		Limit:   limit,
	})
	if err != nil {
		return s.errorResult(log, err, address), nil
	}

	return mcpgo.NewToolResultText(text.FormatList(resp)), nil
}

func (s *Server) callLogger(request mcpgo.CallToolRequest) *zap.Logger {
	log := s.logger.With(
		zap.String("tool", request.Params.Name),
		zap.String("call_id", uuid.NewString()))
	log.Debug("Tool call", zap.Any("arguments", request.Params.Arguments))
	return log
}

// errorResult converts a use case error into a tool result. A missing
// location is an ordinary answer, everything else is flagged as an error.
func (s *Server) errorResult(log *zap.Logger, err error, address string) *mcpgo.CallToolResult {
	if errors.Is(err, apperrors.ErrLocationNotFound) {
		return mcpgo.NewToolResultText(text.LocationNotFound(address))
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return mcpgo.NewToolResultError(appErr.Message)
	}

	log.Error("Tool call failed", zap.Error(err))
	return mcpgo.NewToolResultError(fmt.Sprintf("Error: %v", err))
}
