package handler

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/restaurant-finder/internal/delivery/http/middleware"
	"github.com/restaurant-finder/internal/delivery/text"
	apperrors "github.com/restaurant-finder/internal/pkg/errors"
	"github.com/restaurant-finder/internal/pkg/utils"
	"github.com/restaurant-finder/internal/pkg/validator"
	"github.com/restaurant-finder/internal/usecase"
	"github.com/restaurant-finder/internal/usecase/dto"
)

const formatText = "text"

// RestaurantHandler - обработчик запросов поиска заведений
type RestaurantHandler struct {
	restaurantUC *usecase.RestaurantUseCase
	logger       *zap.Logger
}

// NewRestaurantHandler - создание нового RestaurantHandler
func NewRestaurantHandler(restaurantUC *usecase.RestaurantUseCase, logger *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: restaurantUC,
		logger:       logger,
	}
}

// Nearby godoc
// @Summary Заведения рядом с координатами
// @Description Ищет рестораны, кафе, пабы и фастфуд в радиусе от точки. Результат отсортирован по названию.
// @Tags Restaurants
// @Produce json
// @Produce plain
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Param radius query int false "Радиус поиска в метрах" default(1000)
// @Param limit query int false "Максимальное количество результатов" default(10)
// @Param format query string false "Формат ответа (json, text)" default(json)
// @Success 200 {object} utils.SuccessResponse{data=dto.RestaurantListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/restaurants/nearby [get]
func (h *RestaurantHandler) Nearby(c *fiber.Ctx) error {
	var req dto.CoordinateSearchRequest
	var err error

	if req.Lat, err = queryFloat(c, "lat"); err != nil {
		return h.fail(c, apperrors.ErrInvalidCoordinates, "")
	}
	if req.Lon, err = queryFloat(c, "lon"); err != nil {
		return h.fail(c, apperrors.ErrInvalidCoordinates, "")
	}
	req.Radius = c.QueryInt("radius", 0)
	req.Limit = c.QueryInt("limit", 0)

	if err := validator.Validate(&req); err != nil {
		return h.fail(c, err, "")
	}

	result, err := h.restaurantUC.SearchByCoordinates(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err, "")
	}

	return h.sendList(c, result)
}

// ByAddress godoc
// @Summary Заведения рядом с адресом
// @Description Геокодирует адрес или название города и ищет заведения вокруг найденной точки.
// @Tags Restaurants
// @Produce json
// @Produce plain
// @Param address query string true "Адрес или название города"
// @Param radius query int false "Радиус поиска в метрах" default(1000)
// @Param limit query int false "Максимальное количество результатов" default(10)
// @Param format query string false "Формат ответа (json, text)" default(json)
// @Success 200 {object} utils.SuccessResponse{data=dto.RestaurantListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/restaurants/by-address [get]
func (h *RestaurantHandler) ByAddress(c *fiber.Ctx) error {
	req := dto.AddressSearchRequest{
		Address: c.Query("address"),
		Radius:  c.QueryInt("radius", 0),
		Limit:   c.QueryInt("limit", 0),
	}

	if err := validator.Validate(&req); err != nil {
		return h.fail(c, err, "")
	}

	result, err := h.restaurantUC.SearchByAddress(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err, req.Address)
	}

	return h.sendList(c, result)
}

// ByQuery godoc
// @Summary Поиск заведений по кухне или ключевому слову
// @Description Ищет заведения вокруг адреса, у которых кухня или название содержит запрос (без учёта регистра).
// @Tags Restaurants
// @Produce json
// @Produce plain
// @Param q query string true "Кухня или ключевое слово (italian, pizza, indian)"
// @Param address query string true "Адрес или название города"
// @Param radius query int false "Радиус поиска в метрах" default(1000)
// @Param limit query int false "Максимальное количество результатов" default(10)
// @Param format query string false "Формат ответа (json, text)" default(json)
// @Success 200 {object} utils.SuccessResponse{data=dto.RestaurantListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/restaurants/by-query [get]
func (h *RestaurantHandler) ByQuery(c *fiber.Ctx) error {
	req := dto.QuerySearchRequest{
		Query:   c.Query("q"),
		Address: c.Query("address"),
		Radius:  c.QueryInt("radius", 0),
		Limit:   c.QueryInt("limit", 0),
	}

	if err := validator.Validate(&req); err != nil {
		return h.fail(c, err, "")
	}

	result, err := h.restaurantUC.SearchByQuery(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err, req.Address)
	}

	return h.sendList(c, result)
}

// Details godoc
// @Summary Подробности о заведении
// @Description Обратное геокодирование координат заведения: адрес, город, страна.
// @Tags Restaurants
// @Produce json
// @Produce plain
// @Param lat query number true "Широта заведения"
// @Param lon query number true "Долгота заведения"
// @Param name query string true "Название заведения"
// @Param format query string false "Формат ответа (json, text)" default(json)
// @Success 200 {object} utils.SuccessResponse{data=dto.RestaurantDetailsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/restaurants/details [get]
func (h *RestaurantHandler) Details(c *fiber.Ctx) error {
	req := dto.DetailsRequest{Name: c.Query("name")}
	var err error

	if req.Lat, err = queryFloat(c, "lat"); err != nil {
		return h.fail(c, apperrors.ErrInvalidCoordinates, "")
	}
	if req.Lon, err = queryFloat(c, "lon"); err != nil {
		return h.fail(c, apperrors.ErrInvalidCoordinates, "")
	}

	if err := validator.Validate(&req); err != nil {
		return h.fail(c, err, "")
	}

	result, err := h.restaurantUC.GetDetails(c.UserContext(), req)
	if err != nil {
		if isText(c) && errors.Is(err, apperrors.ErrDetailsUnavailable) {
			return utils.SendText(c, fiber.StatusBadGateway, text.DetailsUnavailable(req.Name))
		}
		return h.fail(c, err, "")
	}

	if isText(c) {
		return utils.SendText(c, fiber.StatusOK, text.FormatDetails(result))
	}
	return utils.SendSuccess(c, result, nil)
}

func (h *RestaurantHandler) sendList(c *fiber.Ctx, result *dto.RestaurantListResponse) error {
	if isText(c) {
		return utils.SendText(c, fiber.StatusOK, text.FormatList(result))
	}
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// fail отдаёт ошибку в запрошенном формате. address нужен для текста
// "Could not find coordinates for address".
func (h *RestaurantHandler) fail(c *fiber.Ctx, err error, address string) error {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		h.logger.Error("Unexpected error",
			zap.String("path", c.Path()),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err))
	}

	if !isText(c) {
		return utils.SendError(c, err)
	}

	if errors.Is(err, apperrors.ErrLocationNotFound) {
		return utils.SendText(c, fiber.StatusNotFound, text.LocationNotFound(address))
	}
	if appErr != nil {
		return utils.SendText(c, appErr.StatusCode, appErr.Message)
	}
	return utils.SendText(c, fiber.StatusInternalServerError, apperrors.ErrInternalServer.Message)
}

func isText(c *fiber.Ctx) bool {
	return c.Query("format") == formatText
}

// queryFloat returns nil when the parameter is absent. NaN and Inf are rejected.
func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%s is not a finite number", key)
	}
	return &v, nil
}
