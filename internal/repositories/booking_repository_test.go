package repositories

import (
	"testing"

	"bps-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestBookingGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	igst := 18.0
	mock.ExpectQuery("FROM bookings").WithArgs("BK-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "grand_total", "cgst", "sgst", "igst",
			"station_name", "station_gst",
			"from_city", "to_city",
			"sender_name", "sender_gst",
			"receiver_name", "receiver_gst",
			"booking_date",
		}).AddRow("BK-1", 1000.0, nil, nil, igst,
			"DELHI", "07AAECB6506F1Z1",
			"Delhi", "Mumbai",
			"Ram Traders", "07AAAAA0000A1Z5",
			"Shyam & Sons", "27BBBBB0000B1Z5",
			"2025-06-02"))

	mock.ExpectQuery("FROM booking_items").WithArgs("BK-1").
		WillReturnRows(sqlmock.NewRows([]string{"ref_no", "insurance", "vpp_amount", "to_pay", "weight", "amount"}).
			AddRow("REF-1", 50.0, 0.0, "Paid", 12.5, 1000.0).
			AddRow("REF-2", 0.0, 20.0, "To Pay", 3.0, 200.0))

	b, err := BookingRepository{DB: db}.GetByID("BK-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	if b.CGST != nil || b.SGST != nil {
		t.Fatalf("NULL rates must stay nil, got cgst=%v sgst=%v", b.CGST, b.SGST)
	}
	if b.IGST == nil || *b.IGST != 18 {
		t.Fatalf("igst = %v, want 18", b.IGST)
	}
	if b.StartStation == nil || b.StartStation.StationName != "DELHI" {
		t.Fatalf("station = %+v", b.StartStation)
	}
	if len(b.Items) != 2 || b.Items[0].RefNo != "REF-1" {
		t.Fatalf("items = %+v", b.Items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := (BookingRepository{DB: db}).GetByID("missing"); !domain.IsNotFound(err) {
		t.Fatalf("want not-found, got %v", err)
	}
}
