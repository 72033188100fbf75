package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type SizingRecord struct {
	ID        int             `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Input     json.RawMessage `json:"input"`
	Outcome   json.RawMessage `json:"outcome"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
	SaveSizing(ctx context.Context, userID int, input, outcome json.RawMessage) (int, error)
	ListSizings(ctx context.Context, userID int) ([]SizingRecord, error)
	GetSizing(ctx context.Context, userID, id int) (SizingRecord, error)
	DeleteSizing(ctx context.Context, userID, id int) error
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) SaveSizing(ctx context.Context, userID int, input, outcome json.RawMessage) (int, error) {
	var id int
	query := "INSERT INTO sizings (user_id, input, outcome) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, input, outcome).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) ListSizings(ctx context.Context, userID int) ([]SizingRecord, error) {
	query := "SELECT id, created_at, input, outcome FROM sizings WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []SizingRecord
	for rows.Next() {
		var rec SizingRecord
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.Input, &rec.Outcome); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresUserRepository) GetSizing(ctx context.Context, userID, id int) (SizingRecord, error) {
	var rec SizingRecord
	query := "SELECT id, created_at, input, outcome FROM sizings WHERE user_id=$1 AND id=$2"
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(&rec.ID, &rec.CreatedAt, &rec.Input, &rec.Outcome)
	return rec, err
}

func (r *PostgresUserRepository) DeleteSizing(ctx context.Context, userID, id int) error {
	query := "DELETE FROM sizings WHERE user_id=$1 AND id=$2"
	_, err := r.db.ExecContext(ctx, query, userID, id)
	return err
}
