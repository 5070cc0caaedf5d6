package domain

import "strings"

// Kind - тип сущности каталога
type Kind string

const (
	KindHospital   Kind = "hospital"
	KindPolice     Kind = "police"
	KindTaxi       Kind = "taxi"
	KindBikeVendor Kind = "bike_vendor"
	KindPlace      Kind = "place"
	KindCustom     Kind = "custom"
)

// Kinds - все известные типы в фиксированном порядке
var Kinds = []Kind{KindHospital, KindPolice, KindTaxi, KindBikeVendor, KindPlace, KindCustom}

func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Entity представляет геопривязанную запись каталога (больница, участок
// полиции, такси, прокат велосипедов, место). Координата присутствует всегда:
// если её нет в исходной записи, она подставляется из synthetic default
// на этапе ингестии, иначе запись отбрасывается.
type Entity struct {
	ID         string                 `json:"id"`
	Kind       Kind                   `json:"kind"`
	Name       string                 `json:"name"`
	Coordinate Point                  `json:"coordinate"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// RawRecord - запись на входе ингестии. Форма полей у upstream-источников
// разная, нормализация в Entity происходит на границе загрузки.
type RawRecord struct {
	ID         string                 `json:"id,omitempty"`
	Name       string                 `json:"name"`
	Lat        *float64               `json:"lat,omitempty"`
	Lon        *float64               `json:"lon,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// RankedEntity - Entity, аннотированная расстоянием и позицией в выдаче.
// Создаётся движком на каждый запрос, общего состояния между запросами нет.
type RankedEntity struct {
	Entity
	DistanceKm float64 `json:"distance_km"`
	Rank       int     `json:"rank"`
}

// MatchesText - регистронезависимое вхождение подстроки в имя или
// адресоподобный атрибут. Пустой запрос означает "без фильтра".
func (e *Entity) MatchesText(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(e.Name), q) {
		return true
	}
	if addr, ok := e.StringAttr("address"); ok {
		return strings.Contains(strings.ToLower(addr), q)
	}
	return false
}

// StringAttr возвращает строковый атрибут
func (e *Entity) StringAttr(key string) (string, bool) {
	v, ok := e.Attributes[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// NumericAttr возвращает первый найденный числовой атрибут из списка ключей.
// JSON-числа декодируются в float64, но int тоже принимаем
func (e *Entity) NumericAttr(keys ...string) (float64, bool) {
	for _, key := range keys {
		v, ok := e.Attributes[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n, true
		case int:
			return float64(n), true
		case int64:
			return float64(n), true
		}
	}
	return 0, false
}
