package repository_test

import (
	"cafe/config"
	"cafe/infras/database"
	"cafe/infras/otel/mocks"
	"cafe/shared"
	"cafe/shared/dto"
	"cafe/shared/repository"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schema = `CREATE TABLE drinks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	origin TEXT NOT NULL,
	iced BOOLEAN NOT NULL DEFAULT 0,
	price TEXT
)`

type drink struct {
	ID     int64   `db:"id"     generated:"true"`
	Name   string  `db:"name"`
	Origin string  `db:"origin"`
	Iced   bool    `db:"iced"`
	Price  *string `db:"price"`
	Note   string  `db:"-"`
}

func newRepository(t *testing.T) repository.Repository[drink] {
	t.Helper()

	repo, _ := newRepositoryWithConnection(t)

	return repo
}

func newRepositoryWithConnection(t *testing.T) (repository.Repository[drink], *database.Connection) {
	t.Helper()

	cfg := &config.Config{}
	cfg.DB.Driver = "sqlite"
	cfg.DB.SQLite.File = filepath.Join(t.TempDir(), "drinks.db")
	cfg.DB.SQLite.BusyTimeoutMs = 1000
	cfg.DB.MaxRetry = 1

	conn, err := database.Open(cfg)
	require.NoError(t, err)

	t.Cleanup(func() { _ = conn.Close() })

	_, err = conn.Write.Exec(schema)
	require.NoError(t, err)

	return repository.NewRepository[drink]("drink", "drinks", "id", conn, mocks.NewOtel()), conn
}

func price(value string) *string {
	return &value
}

func TestNewRepository_InsertColumns(t *testing.T) {
	repo := newRepository(t)

	assert.Equal(t, []string{"name", "origin", "iced", "price"}, repo.InsertColumns)
}

func TestRepository_InsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	firstID, err := repo.Insert(ctx, drink{Name: "Flat White", Origin: "Sydney", Price: price("£3.10")})
	require.NoError(t, err)

	secondID, err := repo.Insert(ctx, drink{Name: "Cold Brew", Origin: "Kyoto", Iced: true})
	require.NoError(t, err)

	assert.Equal(t, int64(1), firstID)
	assert.Equal(t, int64(2), secondID)

	got, err := repo.Get(ctx, shared.FilterByID(secondID, "id", "drinks"))
	require.NoError(t, err)

	assert.Equal(t, drink{ID: 2, Name: "Cold Brew", Origin: "Kyoto", Iced: true}, got)

	missing, err := repo.Get(ctx, shared.FilterByID(99, "id", "drinks"))
	require.NoError(t, err)
	assert.Zero(t, missing.ID)
}

func TestRepository_InsertDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	_, err := repo.Insert(ctx, drink{Name: "Flat White", Origin: "Sydney"})
	require.NoError(t, err)

	_, err = repo.Insert(ctx, drink{Name: "Flat White", Origin: "Melbourne"})
	require.Error(t, err)
	assert.True(t, database.IsUniqueViolation(err))

	count, err := repo.Count(ctx, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRepository_GetAll(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	for _, d := range []drink{
		{Name: "Flat White", Origin: "Sydney"},
		{Name: "Cold Brew", Origin: "Kyoto"},
		{Name: "Long Black", Origin: "Sydney"},
	} {
		_, err := repo.Insert(ctx, d)
		require.NoError(t, err)
	}

	tests := []struct {
		name     string
		params   dto.QueryParams
		filter   dto.FilterGroup
		expected []string
	}{
		{
			name:     "all by id",
			params:   dto.QueryParams{SortBy: "id", SortDir: dto.SortDirAsc},
			expected: []string{"Flat White", "Cold Brew", "Long Black"},
		},
		{
			name:     "all by id descending",
			params:   dto.QueryParams{SortBy: "id", SortDir: dto.SortDirDesc},
			expected: []string{"Long Black", "Cold Brew", "Flat White"},
		},
		{
			name:   "filtered by origin",
			params: dto.QueryParams{SortBy: "id", SortDir: dto.SortDirAsc},
			filter: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "origin", Value: "Sydney", Operator: dto.FilterOperatorEq, Table: "drinks"},
				},
			},
			expected: []string{"Flat White", "Long Black"},
		},
		{
			name: "equality is case sensitive",
			filter: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "origin", Value: "sydney", Operator: dto.FilterOperatorEq, Table: "drinks"},
				},
			},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drinks, err := repo.GetAll(ctx, tt.params, tt.filter)
			require.NoError(t, err)

			names := []string{}
			for _, d := range drinks {
				names = append(names, d.Name)
			}

			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	id, err := repo.Insert(ctx, drink{Name: "Flat White", Origin: "Sydney", Price: price("£3.10")})
	require.NoError(t, err)

	filter := shared.FilterByID(id, "id", "drinks")

	exist, err := repo.Exist(ctx, filter)
	require.NoError(t, err)
	assert.True(t, exist)

	err = repo.Update(ctx, map[string]any{"price": "£3.50"}, filter)
	require.NoError(t, err)

	got, err := repo.Get(ctx, filter)
	require.NoError(t, err)
	require.NotNil(t, got.Price)
	assert.Equal(t, "£3.50", *got.Price)
	assert.Equal(t, "Sydney", got.Origin)

	err = repo.Update(ctx, map[string]any{}, filter)
	assert.Error(t, err)

	err = repo.Update(ctx, map[string]any{"price": "£1"}, dto.FilterGroup{})
	assert.Error(t, err)

	err = repo.Delete(ctx, dto.FilterGroup{})
	assert.Error(t, err)

	err = repo.Delete(ctx, filter)
	require.NoError(t, err)

	exist, err = repo.Exist(ctx, filter)
	require.NoError(t, err)
	assert.False(t, exist)
}

func TestRepository_Transaction(t *testing.T) {
	ctx := context.Background()
	repo, conn := newRepositoryWithConnection(t)

	keptID, err := repo.Insert(ctx, drink{Name: "Mocha", Origin: "Yemen"})
	require.NoError(t, err)

	t.Run("rollback discards every write", func(t *testing.T) {
		tx, err := conn.Write.BeginTxx(ctx, nil)
		require.NoError(t, err)

		_, err = repo.InsertTx(ctx, tx, drink{Name: "Cortado", Origin: "Madrid"})
		require.NoError(t, err)

		require.NoError(t, repo.UpdateTx(ctx, tx, map[string]any{"origin": "Aden"}, shared.FilterByID(keptID, "id", "drinks")))
		require.NoError(t, tx.Rollback())

		count, err := repo.Count(ctx, dto.FilterGroup{})
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		got, err := repo.Get(ctx, shared.FilterByID(keptID, "id", "drinks"))
		require.NoError(t, err)
		assert.Equal(t, "Yemen", got.Origin)
	})

	t.Run("commit applies every write", func(t *testing.T) {
		tx, err := conn.Write.BeginTxx(ctx, nil)
		require.NoError(t, err)

		insertedID, err := repo.InsertTx(ctx, tx, drink{Name: "Cortado", Origin: "Madrid"})
		require.NoError(t, err)

		require.NoError(t, repo.DeleteTx(ctx, tx, shared.FilterByID(keptID, "id", "drinks")))
		require.NoError(t, tx.Commit())

		exist, err := repo.Exist(ctx, shared.FilterByID(keptID, "id", "drinks"))
		require.NoError(t, err)
		assert.False(t, exist)

		got, err := repo.Get(ctx, shared.FilterByID(insertedID, "id", "drinks"))
		require.NoError(t, err)
		assert.Equal(t, "Cortado", got.Name)
	})
}
