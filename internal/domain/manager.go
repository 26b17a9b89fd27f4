package domain

import "time"

// Manager is the domain model for the authenticated actor owning employee
// records. Created on registration, read on login; never updated or deleted.
type Manager struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Department   string
	CreatedAt    time.Time
}
