package domain

import "time"

// Employee is owned by exactly one manager. Email is unique across all
// employees, not per manager.
type Employee struct {
	ID         string
	Name       string
	Email      string
	Position   string
	Department string
	Salary     float64
	ManagerID  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
