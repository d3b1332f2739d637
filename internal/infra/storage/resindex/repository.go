package resindex

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/saudesim/agenda-service/pkg/psqlbuilder"
)

// Repository maps reservation ids to calendar-native event ids. The
// calendar stays the system of record: the index is an optional lookup
// accelerator that spares the O(n) description scan, and every miss falls
// back to that scan. Entries are written best effort after the calendar
// write succeeded, so a stale or missing row is never an error condition
// for the booking flow.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a reservation index repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Put records (or refreshes) the mapping for a reservation id
func (r *Repository) Put(ctx context.Context, reservationID, eventID string, slotStart time.Time) error {
	query, args, err := psqlbuilder.Insert("reservation_index").
		Columns("reservation_id", "event_id", "slot_start").
		Values(reservationID, eventID, slotStart).
		Suffix("ON CONFLICT (reservation_id) DO UPDATE SET event_id = EXCLUDED.event_id, slot_start = EXCLUDED.slot_start, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Put - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Put - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetEventID returns the calendar event id recorded for a reservation id
func (r *Repository) GetEventID(ctx context.Context, reservationID string) (string, error) {
	query, args, err := psqlbuilder.Select("event_id").
		From("reservation_index").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: GetEventID - build select query: %v", ErrBuildQuery, err)
	}

	var eventID string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: GetEventID - execute select: %v", ErrExecQuery, err)
	}

	return eventID, nil
}

// Delete removes the mapping for a reservation id. Deleting an absent row
// is not an error.
func (r *Repository) Delete(ctx context.Context, reservationID string) error {
	query, args, err := psqlbuilder.Delete("reservation_index").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
