package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"taskie/internal/model"
	repo "taskie/internal/user/repository"
)

const userColumns = `id, email, name, password_hash, created_at`

// CreateUser inserts a new User row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (id, email, name, password_hash)
		VALUES (?, ?, ?, ?)
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query, opt.ID, opt.Email, opt.Name, opt.PasswordHash))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	var conditions []string
	var args []any
	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Email != "" {
		conditions = append(conditions, "email = ?")
		args = append(args, opt.Email)
	}
	if len(conditions) == 0 {
		return model.User{}, nil
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + strings.Join(conditions, " AND ") + ` LIMIT 1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var createdAt int64
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &createdAt); err != nil {
		return model.User{}, err
	}
	u.CreatedAt = time.Unix(createdAt, 0)
	return u, nil
}
