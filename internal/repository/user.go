package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

const userColumns = `id, email, password_hash, role, first_name, last_name, phone,
		balance, telegram_chat_id, last_login, created_at, updated_at`

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{db: db, strategy: defaultStrategy()}
}

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.FirstName, &u.LastName,
		&u.Phone, &u.Balance, &u.TelegramChatID, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, email, password_hash, role, first_name, last_name, phone,
								 balance, telegram_chat_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		u.ID, strings.ToLower(u.Email), u.PasswordHash, u.Role,
		u.FirstName, u.LastName, u.Phone, u.Balance, u.TelegramChatID, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, strings.ToLower(email))
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context, filter domain.UserFilter) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE 1=1`
	args := []any{}
	if filter.Role != nil {
		args = append(args, *filter.Role)
		query += fmt.Sprintf(" AND role = $%d", len(args))
	}
	if len(filter.IDs) > 0 {
		args = append(args, pq.Array(filter.IDs))
		query += fmt.Sprintf(" AND id = ANY($%d)", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	return res, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, input domain.UpdateUserInput) (*domain.User, error) {
	query := `UPDATE users
			  SET first_name = COALESCE($2, first_name),
				  last_name  = COALESCE($3, last_name),
				  phone      = COALESCE($4, phone),
				  role       = COALESCE($5, role),
				  updated_at = now()
			  WHERE id = $1
			  RETURNING ` + userColumns
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		input.ID, input.FirstName, input.LastName, input.Phone, input.Role,
	)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return scanUser(row)
}

func (r *UserRepository) SetLastLogin(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE users SET last_login = $2 WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, at); err != nil {
		return fmt.Errorf("set last login: %w", err)
	}
	return nil
}
