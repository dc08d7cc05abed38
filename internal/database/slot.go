package database

import (
	"context"
	"errors"
)

// ErrSlotEmpty is returned by Slot.Read when nothing has been written under the key.
var ErrSlotEmpty = errors.New("storage slot is empty")

// Slot is one named entry of a durable key-value store. The whole document
// lives in a single slot; every write replaces the previous value entirely.
type Slot interface {
	// Key names the slot.
	Key() string
	// Read returns the stored value or ErrSlotEmpty.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the stored value.
	Write(ctx context.Context, value []byte) error
	// Clear removes the value. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}
