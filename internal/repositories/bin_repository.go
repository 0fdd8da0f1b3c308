package repositories

import (
	"database/sql"

	intconfig "bps-backend/internal/config"
	"bps-backend/internal/domain"
)

type BinRepository struct {
	DB *sql.DB
}

func (r BinRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListDeleted returns the soft-deleted bookings keyed by id, the shape the
// bin projection sorts from.
func (r BinRepository) ListDeleted() (map[string]domain.BinRecord, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not connected"}
	}

	rows, err := db.Query(`
		SELECT id, pickup_location, receiver_name, drop_location, contact, COALESCE(booking_date, '')
		FROM bookings
		WHERE deleted = 1
	`)
	if err != nil {
		return nil, domain.InternalError{Msg: "bin query failed", Err: err}
	}
	defer rows.Close()

	out := map[string]domain.BinRecord{}
	for rows.Next() {
		var rec domain.BinRecord
		if err := rows.Scan(&rec.ID, &rec.PickupLocation, &rec.ReceiverName, &rec.DropLocation, &rec.Contact, &rec.Date); err != nil {
			return nil, domain.InternalError{Msg: "bin scan failed", Err: err}
		}
		out[rec.ID] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "bin iteration failed", Err: err}
	}
	return out, nil
}

// Restore clears the deleted flag. Restoring a record that is not in the
// bin is a not-found, not a silent success.
func (r BinRepository) Restore(id string) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}
	if id == "" {
		return domain.ValidationError{Field: "id", Msg: "missing id"}
	}

	res, err := db.Exec(`UPDATE bookings SET deleted = 0 WHERE id = ? AND deleted = 1`, id)
	if err != nil {
		return domain.InternalError{Msg: "restore failed", Err: err}
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return domain.NotFoundError{Resource: "deleted booking"}
	}
	return nil
}
