package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/proximity-service/internal/domain"
)

func TestKind_Valid(t *testing.T) {
	assert.True(t, domain.KindHospital.Valid())
	assert.True(t, domain.KindCustom.Valid())
	assert.False(t, domain.Kind("restaurant").Valid())
	assert.False(t, domain.Kind("").Valid())
}

func TestEntity_MatchesText(t *testing.T) {
	entity := domain.Entity{
		Name: "Orange City Hospital",
		Attributes: map[string]interface{}{
			"address": "Khamla Square, Nagpur",
		},
	}

	tests := []struct {
		name     string
		query    string
		expected bool
	}{
		{"empty query matches everything", "", true},
		{"exact name", "Orange City Hospital", true},
		{"name substring", "orange", true},
		{"name is case-insensitive", "HOSPITAL", true},
		{"address substring", "khamla", true},
		{"address is case-insensitive", "NAGPUR", true},
		{"no match", "police", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, entity.MatchesText(tt.query))
		})
	}
}

func TestEntity_MatchesText_NoAddress(t *testing.T) {
	entity := domain.Entity{Name: "City Cabs"}

	assert.True(t, entity.MatchesText("cabs"))
	assert.False(t, entity.MatchesText("nagpur"))
}

func TestEntity_NumericAttr(t *testing.T) {
	entity := domain.Entity{
		Attributes: map[string]interface{}{
			"price_per_km": 12.5,
			"capacity":     4,
			"name":         "not a number",
		},
	}

	price, ok := entity.NumericAttr("price_per_km")
	assert.True(t, ok)
	assert.Equal(t, 12.5, price)

	// int тоже принимается
	capacity, ok := entity.NumericAttr("capacity")
	assert.True(t, ok)
	assert.Equal(t, 4.0, capacity)

	// Первый найденный ключ из списка
	v, ok := entity.NumericAttr("price", "price_per_km")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	_, ok = entity.NumericAttr("missing")
	assert.False(t, ok)

	_, ok = entity.NumericAttr("name")
	assert.False(t, ok)
}

func TestEntity_StringAttr(t *testing.T) {
	entity := domain.Entity{
		Attributes: map[string]interface{}{
			"phone":  "+91-712-6638100",
			"rating": 4.5,
		},
	}

	phone, ok := entity.StringAttr("phone")
	assert.True(t, ok)
	assert.Equal(t, "+91-712-6638100", phone)

	_, ok = entity.StringAttr("rating")
	assert.False(t, ok)

	_, ok = entity.StringAttr("missing")
	assert.False(t, ok)
}
