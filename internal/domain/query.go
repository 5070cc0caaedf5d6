package domain

// SortKey - ключ сортировки результатов proximity-запроса
type SortKey string

const (
	// SortByDistance - по возрастанию расстояния, ничьи сохраняют порядок каталога
	SortByDistance SortKey = "distance"
	// SortByRating - по убыванию рейтинга, отсутствующий рейтинг считается 0
	SortByRating SortKey = "rating"
	// SortByPrice - по возрастанию цены, отсутствующая цена уходит в конец
	SortByPrice SortKey = "price"
	// SortByCustom - по возрастанию атрибута из Query.CustomSortAttr
	SortByCustom SortKey = "custom"
)

// Query - proximity-запрос. Origin обязателен: без него расстояние
// вычислить нельзя, и движок возвращает ErrInvalidQuery, а не молчаливый
// fallback.
type Query struct {
	Origin         *Point  `json:"origin"`
	Kind           Kind    `json:"kind,omitempty"`
	RadiusKm       float64 `json:"radius_km,omitempty"` // 0 = unbounded
	TextFilter     string  `json:"text_filter,omitempty"`
	SortKey        SortKey `json:"sort_key,omitempty"` // пусто = distance
	CustomSortAttr string  `json:"custom_sort_attr,omitempty"`
	Limit          int     `json:"limit,omitempty"` // 0 = unbounded
}
