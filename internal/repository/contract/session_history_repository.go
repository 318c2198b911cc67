package contract

import (
	"context"

	"amdlingo-be/internal/entity"
)

type SessionHistoryRepository interface {
	// Create registers id with an empty history. Existing sessions keep
	// their entries.
	Create(ctx context.Context, id string) error
	// Append adds entry to the end of id's history, creating it if needed.
	Append(ctx context.Context, id string, entry entity.HistoryEntry) error
	// History returns a copy of id's entries. Unknown sessions yield an
	// empty slice.
	History(ctx context.Context, id string) ([]entity.HistoryEntry, error)
}
