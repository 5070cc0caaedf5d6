package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/proximity-service/internal/domain"
	"github.com/proximity-service/internal/repository/memory"
)

func TestCatalogRepository_ReplaceAllAndAll(t *testing.T) {
	repo := memory.NewCatalogRepository(zap.NewNop())
	ctx := context.Background()

	entities := []domain.Entity{
		{ID: "h1", Kind: domain.KindHospital, Name: "First"},
		{ID: "h2", Kind: domain.KindHospital, Name: "Second"},
	}

	err := repo.ReplaceAll(ctx, domain.KindHospital, entities)
	assert.NoError(t, err)

	got, err := repo.All(ctx, domain.KindHospital)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	// Порядок вставки сохраняется
	assert.Equal(t, "h1", got[0].ID)
	assert.Equal(t, "h2", got[1].ID)
}

func TestCatalogRepository_ReplaceAllReplacesSnapshot(t *testing.T) {
	repo := memory.NewCatalogRepository(zap.NewNop())
	ctx := context.Background()

	_ = repo.ReplaceAll(ctx, domain.KindTaxi, []domain.Entity{
		{ID: "t1", Kind: domain.KindTaxi, Name: "Old"},
	})
	_ = repo.ReplaceAll(ctx, domain.KindTaxi, []domain.Entity{
		{ID: "t2", Kind: domain.KindTaxi, Name: "New"},
	})

	got, err := repo.All(ctx, domain.KindTaxi)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "t2", got[0].ID)
}

func TestCatalogRepository_AllEmptyKind(t *testing.T) {
	repo := memory.NewCatalogRepository(zap.NewNop())

	got, err := repo.All(context.Background(), domain.KindPlace)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalogRepository_FilterByText(t *testing.T) {
	repo := memory.NewCatalogRepository(zap.NewNop())
	ctx := context.Background()

	_ = repo.ReplaceAll(ctx, domain.KindHospital, []domain.Entity{
		{ID: "h1", Name: "Orange City Hospital"},
		{ID: "h2", Name: "CARE Hospital", Attributes: map[string]interface{}{"address": "Wardha Road"}},
		{ID: "h3", Name: "Wockhardt"},
	})

	got, err := repo.FilterByText(ctx, domain.KindHospital, "hospital")
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "h1", got[0].ID)
	assert.Equal(t, "h2", got[1].ID)

	got, err = repo.FilterByText(ctx, domain.KindHospital, "wardha")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "h2", got[0].ID)

	got, err = repo.FilterByText(ctx, domain.KindHospital, "")
	assert.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestCatalogRepository_Kinds(t *testing.T) {
	repo := memory.NewCatalogRepository(zap.NewNop())
	ctx := context.Background()

	kinds, err := repo.Kinds(ctx)
	assert.NoError(t, err)
	assert.Empty(t, kinds)

	// Загружаем не по порядку, Kinds всё равно отдаёт фиксированный порядок
	_ = repo.ReplaceAll(ctx, domain.KindPlace, []domain.Entity{{ID: "p1", Name: "Futala Lake"}})
	_ = repo.ReplaceAll(ctx, domain.KindHospital, []domain.Entity{{ID: "h1", Name: "CARE"}})

	kinds, err = repo.Kinds(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Kind{domain.KindHospital, domain.KindPlace}, kinds)
}

func TestCatalogRepository_ReturnsCopies(t *testing.T) {
	repo := memory.NewCatalogRepository(zap.NewNop())
	ctx := context.Background()

	_ = repo.ReplaceAll(ctx, domain.KindTaxi, []domain.Entity{{ID: "t1", Name: "City Cabs"}})

	got, _ := repo.All(ctx, domain.KindTaxi)
	got[0].Name = "mutated"

	again, _ := repo.All(ctx, domain.KindTaxi)
	assert.Equal(t, "City Cabs", again[0].Name)
}
