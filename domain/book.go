package domain

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalog entry, persisted through the badger-backed repository.
// Available plays the same role as Message.Active.
type Book struct {
	ID          uuid.UUID
	Title       string
	Author      string
	ISBN        string
	Price       float64
	CreatedDate time.Time
	UpdatedDate *time.Time
	Available   bool
}
