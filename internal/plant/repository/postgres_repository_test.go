package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/ridloal/plant-catalog/internal/plant/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var plantRowColumns = []string{"id", "name", "price", "to_json", "in_stock", "created_at", "updated_at"}

func newMockedPostgresRepo(t *testing.T) (PlantStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresPlantRepository(db), mock
}

func TestBuildListPlantsQuery(t *testing.T) {
	t.Run("No filter", func(t *testing.T) {
		query, args := buildListPlantsQuery(domain.PlantFilter{})
		assert.NotContains(t, query, "WHERE")
		assert.Contains(t, query, `ORDER BY name COLLATE "C" ASC`)
		assert.Empty(t, args)
	})

	t.Run("Search and category", func(t *testing.T) {
		query, args := buildListPlantsQuery(domain.PlantFilter{Search: "50%_off", Category: "Indoor"})
		assert.Contains(t, query, "WHERE strpos(lower(name), lower($1)) > 0 AND $2 = ANY(categories)")
		assert.Equal(t, []interface{}{"50%_off", "Indoor"}, args)
	})

	t.Run("Category only", func(t *testing.T) {
		query, args := buildListPlantsQuery(domain.PlantFilter{Category: "Indoor"})
		assert.Contains(t, query, "WHERE $1 = ANY(categories)")
		assert.Equal(t, []interface{}{"Indoor"}, args)
	})
}

func TestPostgresPlantRepository_ListPlants(t *testing.T) {
	repo, mock := newMockedPostgresRepo(t)
	ctx := context.TODO()
	now := time.Now()

	t.Run("Successful list", func(t *testing.T) {
		rows := sqlmock.NewRows(plantRowColumns).
			AddRow(uuid.NewString(), "Aloe Vera", 249.0, []byte(`["Succulent","Medicinal"]`), true, now, now).
			AddRow(uuid.NewString(), "Areca Palm", 599.0, []byte(`["Indoor"]`), false, now, now)
		mock.ExpectQuery(regexp.QuoteMeta("FROM plants WHERE strpos(lower(name), lower($1)) > 0")).
			WithArgs("a").
			WillReturnRows(rows)

		plants, err := repo.ListPlants(ctx, domain.PlantFilter{Search: "a"})
		assert.NoError(t, err)
		require.Len(t, plants, 2)
		assert.Equal(t, "Aloe Vera", plants[0].Name)
		assert.Equal(t, []string{"Succulent", "Medicinal"}, plants[0].Categories)
		assert.False(t, plants[1].InStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Query error", func(t *testing.T) {
		mock.ExpectQuery("FROM plants").WillReturnError(errors.New("connection reset"))

		plants, err := repo.ListPlants(ctx, domain.PlantFilter{})
		assert.Error(t, err)
		assert.Nil(t, plants)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresPlantRepository_ListCategories(t *testing.T) {
	repo, mock := newMockedPostgresRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT unnest(categories)")).
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("Indoor").AddRow("Succulent"))

	categories, err := repo.ListCategories(context.TODO())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Indoor", "Succulent"}, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPlantRepository_GetPlantByID(t *testing.T) {
	repo, mock := newMockedPostgresRepo(t)
	ctx := context.TODO()
	id := uuid.NewString()

	t.Run("Malformed id never reaches the database", func(t *testing.T) {
		p, err := repo.GetPlantByID(ctx, "123")
		assert.Nil(t, p)
		assert.ErrorIs(t, err, ErrInvalidPlantID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM plants WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(plantRowColumns))

		p, err := repo.GetPlantByID(ctx, id)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, ErrPlantNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Found", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta("FROM plants WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(plantRowColumns).
				AddRow(id, "Tulsi", 99.0, []byte(`["Medicinal"]`), true, now, now))

		p, err := repo.GetPlantByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, id, p.ID)
		assert.Equal(t, 99.0, p.Price)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresPlantRepository_CreatePlant(t *testing.T) {
	repo, mock := newMockedPostgresRepo(t)
	ctx := context.TODO()
	insert := regexp.QuoteMeta("INSERT INTO plants (name, price, categories, in_stock)")

	t.Run("Successful insert", func(t *testing.T) {
		id := uuid.NewString()
		now := time.Now()
		mock.ExpectQuery(insert).
			WithArgs("Tulsi", 99.0, sqlmock.AnyArg(), true).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))

		plant := &domain.Plant{Name: "Tulsi", Price: 99, Categories: []string{"Medicinal"}, InStock: true}
		err := repo.CreatePlant(ctx, plant)
		assert.NoError(t, err)
		assert.Equal(t, id, plant.ID)
		assert.Equal(t, now, plant.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unique violation from lib/pq", func(t *testing.T) {
		mock.ExpectQuery(insert).WillReturnError(&pq.Error{Code: "23505"})

		err := repo.CreatePlant(ctx, &domain.Plant{Name: "Tulsi", Categories: []string{"Medicinal"}})
		assert.ErrorIs(t, err, ErrPlantConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unique violation from pgx", func(t *testing.T) {
		mock.ExpectQuery(insert).WillReturnError(&pgconn.PgError{Code: "23505"})

		err := repo.CreatePlant(ctx, &domain.Plant{Name: "Tulsi", Categories: []string{"Medicinal"}})
		assert.ErrorIs(t, err, ErrPlantConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Other database error", func(t *testing.T) {
		dbErr := errors.New("disk full")
		mock.ExpectQuery(insert).WillReturnError(dbErr)

		err := repo.CreatePlant(ctx, &domain.Plant{Name: "Tulsi", Categories: []string{"Medicinal"}})
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresPlantRepository_ReplaceAll(t *testing.T) {
	repo, mock := newMockedPostgresRepo(t)
	plants := []domain.Plant{
		{Name: "Jade", Price: 299, Categories: []string{"Succulent"}, InStock: true},
		{Name: "Tulsi", Price: 99, Categories: []string{"Medicinal"}, InStock: false},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM plants")).WillReturnResult(sqlmock.NewResult(0, 3))
	prep := mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO plants"))
	prep.ExpectExec().WithArgs("Jade", 299.0, sqlmock.AnyArg(), true).WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs("Tulsi", 99.0, sqlmock.AnyArg(), false).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	n, err := repo.ReplaceAll(context.TODO(), plants)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJSONStrings_Scan(t *testing.T) {
	var s jsonStrings
	assert.NoError(t, s.Scan(`["a","b"]`))
	assert.Equal(t, jsonStrings{"a", "b"}, s)

	assert.NoError(t, s.Scan(nil))
	assert.Equal(t, jsonStrings{}, s)

	assert.Error(t, s.Scan(42))
	assert.Error(t, s.Scan([]byte("{")))
}
