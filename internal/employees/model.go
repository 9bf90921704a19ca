package employees

import (
	"errors"
	"time"
)

// Employee is a library staff record.
type Employee struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Position  string
	CreatedAt time.Time
}

// ErrNotFound is returned when no employee matches the lookup key.
var ErrNotFound = errors.New("employee not found")
