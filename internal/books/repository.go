package books

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists catalog entries.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	FindByID(ctx context.Context, id string) (Book, error)
	Create(ctx context.Context, book Book) error
	Update(ctx context.Context, book Book) error
	Delete(ctx context.Context, id string) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed book repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Book, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, author, genre, year, description, created_at
        FROM books ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, book)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Book, error) {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return Book{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT id, title, author, genre, year, description, created_at
        FROM books WHERE id = $1`, bookID)
	book, err := scanBook(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Book{}, ErrNotFound
	}
	return book, err
}

func (r *PostgresRepository) Create(ctx context.Context, book Book) error {
	bookID, err := uuid.Parse(book.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO books (id, title, author, genre, year, description, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		bookID, book.Title, book.Author, book.Genre, book.Year, book.Description, book.CreatedAt.UTC())
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, book Book) error {
	bookID, err := uuid.Parse(book.ID)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `UPDATE books SET title = $1, author = $2, genre = $3, year = $4, description = $5
        WHERE id = $6`, book.Title, book.Author, book.Genre, book.Year, book.Description, bookID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, bookID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBook(row pgx.Row) (Book, error) {
	var (
		id        uuid.UUID
		createdAt time.Time
		book      Book
	)
	if err := row.Scan(&id, &book.Title, &book.Author, &book.Genre, &book.Year, &book.Description, &createdAt); err != nil {
		return Book{}, err
	}
	book.ID = id.String()
	book.CreatedAt = createdAt.UTC()
	return book, nil
}
