package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atrium-inc/atrium/internal/domain/catalog"
	vo "github.com/atrium-inc/atrium/internal/domain/ticket/valueobjects"
)

// countingRefStore records how many times each lookup hit the backing store.
type countingRefStore struct {
	categories    map[string]*catalog.Category
	skillGroups   map[string]*catalog.SkillGroup
	categoryCalls int
	groupCalls    int
}

func (s *countingRefStore) CategoryByCode(ctx context.Context, code string) (*catalog.Category, error) {
	s.categoryCalls++
	return s.categories[code], nil
}

func (s *countingRefStore) SkillGroupByCode(ctx context.Context, code string) (*catalog.SkillGroup, error) {
	s.groupCalls++
	return s.skillGroups[code], nil
}

func TestCatalogCache_CategoryByCode(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()

	store := &countingRefStore{
		categories: map[string]*catalog.Category{
			"plumbing": {
				Code:            "plumbing",
				Name:            "Plumbing",
				SkillGroupID:    3,
				DefaultPriority: vo.PriorityHigh,
				SLAHours:        8,
			},
		},
	}
	cache := NewCatalogCache(client, store, newNopLogger())
	ctx := context.Background()

	first, err := cache.CategoryByCode(ctx, "plumbing")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, uint(3), first.SkillGroupID)
	assert.Equal(t, 1, store.categoryCalls)

	second, err := cache.CategoryByCode(ctx, "plumbing")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.DefaultPriority, second.DefaultPriority)
	assert.Equal(t, 1, store.categoryCalls, "second read should be served from cache")
}

func TestCatalogCache_UnknownCategoryCachesNullMarker(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()

	store := &countingRefStore{categories: map[string]*catalog.Category{}}
	cache := NewCatalogCache(client, store, newNopLogger())
	ctx := context.Background()

	category, err := cache.CategoryByCode(ctx, "no_such_code")
	require.NoError(t, err)
	assert.Nil(t, category)
	assert.Equal(t, 1, store.categoryCalls)

	category, err = cache.CategoryByCode(ctx, "no_such_code")
	require.NoError(t, err)
	assert.Nil(t, category)
	assert.Equal(t, 1, store.categoryCalls, "unknown code should be answered by the null marker")
}

func TestCatalogCache_SkillGroupByCode(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()

	store := &countingRefStore{
		skillGroups: map[string]*catalog.SkillGroup{
			"technical": {ID: 1, Code: "technical", Name: "Technical"},
		},
	}
	cache := NewCatalogCache(client, store, newNopLogger())
	ctx := context.Background()

	group, err := cache.SkillGroupByCode(ctx, "technical")
	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, uint(1), group.ID)

	group, err = cache.SkillGroupByCode(ctx, "technical")
	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, 1, store.groupCalls)
}

func TestCatalogCache_Invalidate(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()

	store := &countingRefStore{
		categories: map[string]*catalog.Category{
			"electrical": {Code: "electrical", SkillGroupID: 1, DefaultPriority: vo.PriorityMedium, SLAHours: 24},
		},
		skillGroups: map[string]*catalog.SkillGroup{
			"technical": {ID: 1, Code: "technical"},
		},
	}
	cache := NewCatalogCache(client, store, newNopLogger())
	ctx := context.Background()

	_, err := cache.CategoryByCode(ctx, "electrical")
	require.NoError(t, err)
	_, err = cache.SkillGroupByCode(ctx, "technical")
	require.NoError(t, err)

	require.NoError(t, cache.Invalidate(ctx, "electrical", "technical"))

	_, err = cache.CategoryByCode(ctx, "electrical")
	require.NoError(t, err)
	assert.Equal(t, 2, store.categoryCalls, "invalidated entry should be re-read from the store")
}