package dto

// CoordinateSearchRequest - поиск заведений вокруг координаты
type CoordinateSearchRequest struct {
	Lat    *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Lon    *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Radius int      `json:"radius" validate:"omitempty,min=1"` // meters
	Limit  int      `json:"limit" validate:"omitempty,min=1"`
}

// AddressSearchRequest - поиск заведений вокруг адреса
type AddressSearchRequest struct {
	Address string `json:"address" validate:"required,min=1"`
	Radius  int    `json:"radius" validate:"omitempty,min=1"` // meters
	Limit   int    `json:"limit" validate:"omitempty,min=1"`
}

// QuerySearchRequest - поиск по кухне или ключевому слову вокруг адреса
type QuerySearchRequest struct {
	Query   string `json:"query" validate:"required,min=1"`
	Address string `json:"address" validate:"required,min=1"`
	Radius  int    `json:"radius" validate:"omitempty,min=1"` // meters
	Limit   int    `json:"limit" validate:"omitempty,min=1"`
}

// DetailsRequest - запрос подробностей о заведении по координатам
type DetailsRequest struct {
	Lat  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Lon  *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Name string   `json:"name" validate:"required"`
}
