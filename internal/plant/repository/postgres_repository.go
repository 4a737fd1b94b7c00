package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/ridloal/plant-catalog/internal/plant/domain"
	"github.com/ridloal/plant-catalog/internal/platform/logger"
)

// uniqueViolation is SQLSTATE unique_violation.
const uniqueViolation = "23505"

// Categories are read back as JSON so scanning works the same under pgx and lib/pq.
const plantColumns = `id, name, price, to_json(categories), in_stock, created_at, updated_at`

type postgresPlantRepository struct {
	db *sql.DB
}

func NewPostgresPlantRepository(db *sql.DB) PlantStore {
	return &postgresPlantRepository{db: db}
}

func (r *postgresPlantRepository) ListPlants(ctx context.Context, filter domain.PlantFilter) ([]domain.Plant, error) {
	query, args := buildListPlantsQuery(filter)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("ListPlants: query failed", err)
		return nil, err
	}
	defer rows.Close()

	plants := []domain.Plant{}
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			logger.Error("ListPlants: scan failed", err)
			return nil, err
		}
		plants = append(plants, *p)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListPlants: rows iteration error", err)
		return nil, err
	}
	return plants, nil
}

// buildListPlantsQuery turns a filter into SQL. The search term is matched with
// strpos so LIKE wildcards in user input stay literal.
func buildListPlantsQuery(filter domain.PlantFilter) (string, []interface{}) {
	var (
		conditions []string
		args       []interface{}
	)
	if filter.Search != "" {
		args = append(args, filter.Search)
		conditions = append(conditions, fmt.Sprintf("strpos(lower(name), lower($%d)) > 0", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(categories)", len(args)))
	}

	query := `SELECT ` + plantColumns + ` FROM plants`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY name COLLATE "C" ASC`
	return query, args
}

func (r *postgresPlantRepository) ListCategories(ctx context.Context) ([]string, error) {
	query := `SELECT category FROM (SELECT DISTINCT unnest(categories) AS category FROM plants) AS c ORDER BY category COLLATE "C" ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListCategories: query failed", err)
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			logger.Error("ListCategories: scan failed", err)
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListCategories: rows iteration error", err)
		return nil, err
	}
	return categories, nil
}

func (r *postgresPlantRepository) GetPlantByID(ctx context.Context, id string) (*domain.Plant, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidPlantID
	}

	query := `SELECT ` + plantColumns + ` FROM plants WHERE id = $1`
	p, err := scanPlant(r.db.QueryRowContext(ctx, query, parsed.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlantNotFound
		}
		logger.Error("GetPlantByID: query failed", err)
		return nil, err
	}
	return p, nil
}

func (r *postgresPlantRepository) CreatePlant(ctx context.Context, plant *domain.Plant) error {
	query := `INSERT INTO plants (name, price, categories, in_stock)
              VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, plant.Name, plant.Price, pq.Array(plant.Categories), plant.InStock).
		Scan(&plant.ID, &plant.CreatedAt, &plant.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			logger.Warn("CreatePlant: duplicate name %q", plant.Name)
			return ErrPlantConflict
		}
		logger.Error("CreatePlant: failed to insert plant", err)
		return err
	}
	return nil
}

func (r *postgresPlantRepository) ReplaceAll(ctx context.Context, plants []domain.Plant) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM plants`); err != nil {
		return 0, fmt.Errorf("failed to clear plants: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO plants (name, price, categories, in_stock) VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare seed insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range plants {
		if _, err := stmt.ExecContext(ctx, p.Name, p.Price, pq.Array(p.Categories), p.InStock); err != nil {
			if isUniqueViolation(err) {
				return 0, fmt.Errorf("seed plant %q: %w", p.Name, ErrPlantConflict)
			}
			return 0, fmt.Errorf("failed to insert seed plant %q: %w", p.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}
	return len(plants), nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlant(row rowScanner) (*domain.Plant, error) {
	var (
		p          domain.Plant
		categories jsonStrings
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &categories, &p.InStock, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Categories = categories
	return &p, nil
}

// jsonStrings scans a JSON array of strings, as produced by to_json(text[]).
type jsonStrings []string

func (s *jsonStrings) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = []string{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into categories", src)
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("failed to decode categories: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*s = out
	return nil
}

// isUniqueViolation understands errors from both the pgx and lib/pq drivers.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
