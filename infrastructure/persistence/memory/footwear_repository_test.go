package memory

import (
	"context"
	"testing"

	"github.com/JuanSebastianGarcia23/calzado/domain/footwear"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFootwearRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewFootwearRepository()

	item := footwear.NewItem("a", footwear.Attributes{footwear.FieldName: "Bota"})
	require.NoError(t, repo.Put(ctx, item))

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Bota", *got.Name)

	// stored copies are isolated from the caller
	*item.Name = "changed"
	got, _ = repo.Get(ctx, "a")
	assert.Equal(t, "Bota", *got.Name)
}

func TestFootwearRepository_UpdateMergesAndUpserts(t *testing.T) {
	ctx := context.Background()
	repo := NewFootwearRepository()

	require.NoError(t, repo.Put(ctx, footwear.NewItem("a", footwear.Attributes{footwear.FieldName: "Bota", footwear.FieldPrice: 10.0})))
	require.NoError(t, repo.Update(ctx, "a", footwear.Attributes{footwear.FieldPrice: 12.5}))

	got, _ := repo.Get(ctx, "a")
	assert.Equal(t, "Bota", *got.Name)
	assert.Equal(t, 12.5, got.Price)

	require.NoError(t, repo.Update(ctx, "new", footwear.Attributes{footwear.FieldSize: 40.0}))
	got, _ = repo.Get(ctx, "new")
	require.NotNil(t, got)
	assert.Equal(t, 40.0, got.Size)
}

func TestFootwearRepository_ScanOrderAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewFootwearRepository()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Put(ctx, footwear.NewItem(id, footwear.Attributes{})))
	}
	require.NoError(t, repo.Delete(ctx, "b"))
	require.NoError(t, repo.Delete(ctx, "missing"))

	items, err := repo.Scan(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "c", items[1].ID)
}
