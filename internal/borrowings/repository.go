package borrowings

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists borrowings.
type Repository interface {
	List(ctx context.Context) ([]Borrowing, error)
	FindByID(ctx context.Context, id string) (Borrowing, error)
	Create(ctx context.Context, borrowing Borrowing) error
	MarkReturned(ctx context.Context, id string, returnedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed borrowing repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Borrowing, error) {
	rows, err := r.db.Query(ctx, `SELECT id, book_id, member_id, borrowed_at, due_date, returned_at
        FROM borrowings ORDER BY borrowed_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Borrowing
	for rows.Next() {
		borrowing, err := scanBorrowing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, borrowing)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Borrowing, error) {
	borrowingID, err := uuid.Parse(id)
	if err != nil {
		return Borrowing{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT id, book_id, member_id, borrowed_at, due_date, returned_at
        FROM borrowings WHERE id = $1`, borrowingID)
	borrowing, err := scanBorrowing(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Borrowing{}, ErrNotFound
	}
	return borrowing, err
}

func (r *PostgresRepository) Create(ctx context.Context, borrowing Borrowing) error {
	borrowingID, err := uuid.Parse(borrowing.ID)
	if err != nil {
		return err
	}
	bookID, err := uuid.Parse(borrowing.BookID)
	if err != nil {
		return ErrUnknownBook
	}
	memberID, err := uuid.Parse(borrowing.MemberID)
	if err != nil {
		return ErrUnknownMember
	}
	_, err = r.db.Exec(ctx, `INSERT INTO borrowings (id, book_id, member_id, borrowed_at, due_date, returned_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		borrowingID, bookID, memberID, borrowing.BorrowedAt.UTC(), borrowing.DueDate.UTC(), borrowing.ReturnedAt)
	return err
}

func (r *PostgresRepository) MarkReturned(ctx context.Context, id string, returnedAt time.Time) error {
	borrowingID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `UPDATE borrowings SET returned_at = $1 WHERE id = $2`, returnedAt.UTC(), borrowingID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	borrowingID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM borrowings WHERE id = $1`, borrowingID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBorrowing(row pgx.Row) (Borrowing, error) {
	var (
		id         uuid.UUID
		bookID     uuid.UUID
		memberID   uuid.UUID
		borrowedAt time.Time
		dueDate    time.Time
		returnedAt *time.Time
		borrowing  Borrowing
	)
	if err := row.Scan(&id, &bookID, &memberID, &borrowedAt, &dueDate, &returnedAt); err != nil {
		return Borrowing{}, err
	}
	borrowing.ID = id.String()
	borrowing.BookID = bookID.String()
	borrowing.MemberID = memberID.String()
	borrowing.BorrowedAt = borrowedAt.UTC()
	borrowing.DueDate = dueDate.UTC()
	borrowing.ReturnedAt = returnedAt
	return borrowing, nil
}
