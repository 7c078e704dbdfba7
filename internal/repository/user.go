package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Evgen-Mutagen/go-cost-manager/internal/model"
)

type userRepository struct {
	db *Database
}

func NewUserRepository(db *Database) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user := &model.User{}
	var (
		birthday      sql.NullTime
		maritalStatus sql.NullString
	)

	query := `SELECT id, first_name, last_name, birthday, marital_status FROM users WHERE id = $1`
	err := r.db.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&birthday,
		&maritalStatus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if birthday.Valid {
		user.Birthday = &birthday.Time
	}
	if maritalStatus.Valid {
		user.MaritalStatus = model.MaritalStatus(maritalStatus.String)
	}

	return user, nil
}
