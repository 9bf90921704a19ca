package members

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists members.
type Repository interface {
	List(ctx context.Context) ([]Member, error)
	FindByID(ctx context.Context, id string) (Member, error)
	Create(ctx context.Context, member Member) error
	Update(ctx context.Context, member Member) error
	Delete(ctx context.Context, id string) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed member repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Member, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email, phone, created_at FROM members ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, member)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Member, error) {
	memberID, err := uuid.Parse(id)
	if err != nil {
		return Member{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT id, name, email, phone, created_at FROM members WHERE id = $1`, memberID)
	member, err := scanMember(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Member{}, ErrNotFound
	}
	return member, err
}

func (r *PostgresRepository) Create(ctx context.Context, member Member) error {
	memberID, err := uuid.Parse(member.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO members (id, name, email, phone, created_at)
        VALUES ($1, $2, $3, $4, $5)`, memberID, member.Name, member.Email, member.Phone, member.CreatedAt.UTC())
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, member Member) error {
	memberID, err := uuid.Parse(member.ID)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `UPDATE members SET name = $1, email = $2, phone = $3 WHERE id = $4`,
		member.Name, member.Email, member.Phone, memberID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	memberID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM members WHERE id = $1`, memberID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMember(row pgx.Row) (Member, error) {
	var (
		id        uuid.UUID
		createdAt time.Time
		member    Member
	)
	if err := row.Scan(&id, &member.Name, &member.Email, &member.Phone, &createdAt); err != nil {
		return Member{}, err
	}
	member.ID = id.String()
	member.CreatedAt = createdAt.UTC()
	return member, nil
}
