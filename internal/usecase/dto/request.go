package dto

// PointDTO - координаты точки
type PointDTO struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

// ProximityQueryRequest - запрос ранжированной выдачи вокруг точки.
// Origin намеренно не помечен required: его отсутствие должно дойти до
// движка и вернуться как INVALID_QUERY, а не как generic ошибка валидации.
type ProximityQueryRequest struct {
	Origin         *PointDTO `json:"origin" validate:"omitempty"`
	Kind           string    `json:"kind,omitempty" validate:"omitempty,oneof=hospital police taxi bike_vendor place custom"`
	RadiusKm       float64   `json:"radius_km,omitempty" validate:"omitempty,min=0"`
	TextFilter     string    `json:"text_filter,omitempty"`
	SortKey        string    `json:"sort_key,omitempty"`
	CustomSortAttr string    `json:"custom_sort_attr,omitempty"`
	Limit          int       `json:"limit,omitempty" validate:"omitempty,min=1,max=500"`
}

// PositionUpdateRequest - обновление позиции от устройства
type PositionUpdateRequest struct {
	Lat       float64 `json:"lat" validate:"min=-90,max=90"`
	Lon       float64 `json:"lon" validate:"min=-180,max=180"`
	AccuracyM float64 `json:"accuracy_m" validate:"omitempty,min=0"`
}

// FavoriteAddRequest - полный снапшот сущности для добавления в избранное
type FavoriteAddRequest struct {
	ID         string                 `json:"id" validate:"required"`
	Kind       string                 `json:"kind" validate:"required,oneof=hospital police taxi bike_vendor place custom"`
	Name       string                 `json:"name" validate:"required"`
	Lat        float64                `json:"lat" validate:"min=-90,max=90"`
	Lon        float64                `json:"lon" validate:"min=-180,max=180"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}
