package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/Evgen-Mutagen/go-cost-manager/internal/model"
)

type costRepository struct {
	db *Database
}

func NewCostRepository(db *Database) CostRepository {
	return &costRepository{db: db}
}

func (r *costRepository) Create(ctx context.Context, cost *model.Cost) error {
	query := `INSERT INTO costs (userid, description, category, sum, created_at)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id`

	var id int64
	err := r.db.db.QueryRowContext(ctx, query,
		cost.UserID,
		cost.Description,
		string(cost.Category),
		cost.Sum,
		cost.CreatedAt,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to insert cost: %w", err)
	}

	cost.ID = strconv.FormatInt(id, 10)
	return nil
}

func (r *costRepository) GetByUserID(ctx context.Context, userID int64) ([]*model.Cost, error) {
	query := `SELECT id, userid, description, category, sum, created_at
              FROM costs
              WHERE userid = $1
              ORDER BY id`

	rows, err := r.db.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return scanCosts(rows)
}

func (r *costRepository) GetByUserIDInRange(ctx context.Context, userID int64, from, to time.Time) ([]*model.Cost, error) {
	query := `SELECT id, userid, description, category, sum, created_at
              FROM costs
              WHERE userid = $1 AND created_at >= $2 AND created_at < $3
              ORDER BY id`

	rows, err := r.db.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return scanCosts(rows)
}

func scanCosts(rows *sql.Rows) ([]*model.Cost, error) {
	defer rows.Close()

	var costs []*model.Cost
	for rows.Next() {
		var (
			cost     model.Cost
			id       int64
			category string
		)
		if err := rows.Scan(
			&id,
			&cost.UserID,
			&cost.Description,
			&category,
			&cost.Sum,
			&cost.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}

		cost.ID = strconv.FormatInt(id, 10)
		cost.Category = model.Category(category)
		costs = append(costs, &cost)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return costs, nil
}
