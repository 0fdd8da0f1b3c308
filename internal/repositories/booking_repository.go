package repositories

import (
	"database/sql"
	"errors"

	intconfig "bps-backend/internal/config"
	"bps-backend/internal/domain"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByID loads one booking with its line items. Tax rate columns stay
// pointers: NULL in the database means "rate not provided", which is not the
// same thing as zero once explicit zero-rate mode is enabled.
func (r BookingRepository) GetByID(id string) (domain.Booking, error) {
	db := r.db()
	if db == nil {
		return domain.Booking{}, domain.InternalError{Msg: "database not connected"}
	}
	if id == "" {
		return domain.Booking{}, domain.ValidationError{Field: "booking_id", Msg: "missing id"}
	}

	var (
		b                domain.Booking
		cgst, sgst, igst sql.NullFloat64
		station          domain.Station
	)
	err := db.QueryRow(`
		SELECT id, grand_total, cgst, sgst, igst,
		       station_name, station_gst,
		       from_city, to_city,
		       sender_name, sender_gst,
		       receiver_name, receiver_gst,
		       COALESCE(booking_date, '')
		FROM bookings
		WHERE id = ? AND deleted = 0
	`, id).Scan(
		&b.ID, &b.GrandTotal, &cgst, &sgst, &igst,
		&station.StationName, &station.GST,
		&b.FromCity, &b.ToCity,
		&b.SenderName, &b.SenderGST,
		&b.ReceiverName, &b.ReceiverGST,
		&b.BookingDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return domain.Booking{}, domain.InternalError{Msg: "booking query failed", Err: err}
	}

	if cgst.Valid {
		b.CGST = &cgst.Float64
	}
	if sgst.Valid {
		b.SGST = &sgst.Float64
	}
	if igst.Valid {
		b.IGST = &igst.Float64
	}
	b.StartStation = &station

	items, err := r.listItems(db, id)
	if err != nil {
		return domain.Booking{}, err
	}
	b.Items = items

	return b, nil
}

func (r BookingRepository) listItems(db *sql.DB, bookingID string) ([]domain.LineItem, error) {
	rows, err := db.Query(`
		SELECT ref_no, insurance, vpp_amount, to_pay, weight, amount
		FROM booking_items
		WHERE booking_id = ?
		ORDER BY id
	`, bookingID)
	if err != nil {
		return nil, domain.InternalError{Msg: "booking items query failed", Err: err}
	}
	defer rows.Close()

	var items []domain.LineItem
	for rows.Next() {
		var it domain.LineItem
		if err := rows.Scan(&it.RefNo, &it.Insurance, &it.VPPAmount, &it.ToPay, &it.Weight, &it.Amount); err != nil {
			return nil, domain.InternalError{Msg: "booking item scan failed", Err: err}
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "booking items iteration failed", Err: err}
	}
	return items, nil
}
