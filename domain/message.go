// Package domain contains core concepts of the message board.
// Entities are plain values; the repositories own the authoritative copies.
package domain

import "time"

// Message is the single record kept by the board.
// Active is a soft-delete marker: retired messages stay in the store
// but are excluded from the activity statistics.
type Message struct {
	ID          int64
	Content     string
	Author      string
	CreatedDate time.Time
	UpdatedDate *time.Time // nil until the first update
	Active      bool
}
