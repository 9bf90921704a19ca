package employees

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists employees.
type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, employee Employee) error
	Update(ctx context.Context, employee Employee) error
	Delete(ctx context.Context, id string) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed employee repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Employee, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email, phone, position, created_at FROM employees ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, employee)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Employee, error) {
	employeeID, err := uuid.Parse(id)
	if err != nil {
		return Employee{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT id, name, email, phone, position, created_at FROM employees WHERE id = $1`, employeeID)
	employee, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return employee, err
}

func (r *PostgresRepository) Create(ctx context.Context, employee Employee) error {
	employeeID, err := uuid.Parse(employee.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO employees (id, name, email, phone, position, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		employeeID, employee.Name, employee.Email, employee.Phone, employee.Position, employee.CreatedAt.UTC())
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, employee Employee) error {
	employeeID, err := uuid.Parse(employee.ID)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `UPDATE employees SET name = $1, email = $2, phone = $3, position = $4 WHERE id = $5`,
		employee.Name, employee.Email, employee.Phone, employee.Position, employeeID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	employeeID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, employeeID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row) (Employee, error) {
	var (
		id        uuid.UUID
		createdAt time.Time
		employee  Employee
	)
	if err := row.Scan(&id, &employee.Name, &employee.Email, &employee.Phone, &employee.Position, &createdAt); err != nil {
		return Employee{}, err
	}
	employee.ID = id.String()
	employee.CreatedAt = createdAt.UTC()
	return employee, nil
}
