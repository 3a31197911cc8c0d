package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mangostorage/inventory-service/internal/domain"
)

// accountUpdateColumns is the allow-list for partial account updates.
var accountUpdateColumns = []string{"username", "password_hash", "position"}

// AccountRepository defines persistence access for user accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.UserAccount) error
	GetByID(ctx context.Context, id int64) (*domain.UserAccount, error)
	GetByUsername(ctx context.Context, username string) (*domain.UserAccount, error)
	List(ctx context.Context) ([]domain.UserAccount, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.UserAccount) error {
	const query = `
        INSERT INTO user_accounts (username, password_hash, position)
        VALUES ($1, $2, $3)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		account.Username,
		account.PasswordHash,
		account.Position,
	).Scan(&account.ID)
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.UserAccount, error) {
	const query = `
        SELECT id, username, password_hash, position
        FROM user_accounts WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.UserAccount, error) {
	const query = `
        SELECT id, username, password_hash, position
        FROM user_accounts WHERE username=$1`
	return r.fetchSingle(ctx, query, username)
}

func (r *accountRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.UserAccount, error) {
	var account domain.UserAccount
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.Position,
	); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) List(ctx context.Context) ([]domain.UserAccount, error) {
	const query = `
        SELECT id, username, password_hash, position
        FROM user_accounts ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []domain.UserAccount{}
	for rows.Next() {
		var account domain.UserAccount
		if err := rows.Scan(
			&account.ID,
			&account.Username,
			&account.PasswordHash,
			&account.Position,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (r *accountRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	query, args, err := BuildUpdate("user_accounts", "id", id, accountUpdateColumns, fields)
	if err != nil {
		return err
	}
	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM user_accounts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
