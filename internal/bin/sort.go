// Package bin derives the sorted, read-only recycle-bin view from a mapping
// of soft-deleted records. It never mutates the records; restoring is the
// service layer's job.
package bin

import (
	"sort"
	"strings"

	"bps-backend/internal/domain"
	"bps-backend/internal/utils"
)

type Key string

const (
	KeyPickupLocation Key = "pickupLocation"
	KeyReceiverName   Key = "receiverName"
	KeyDropLocation   Key = "dropLocation"
	KeyContact        Key = "contact"
	KeyDate           Key = "date"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseKey validates a sort key from the query string.
func ParseKey(s string) (Key, bool) {
	switch Key(strings.TrimSpace(s)) {
	case KeyPickupLocation, KeyReceiverName, KeyDropLocation, KeyContact, KeyDate:
		return Key(strings.TrimSpace(s)), true
	}
	return "", false
}

func ParseDirection(s string) (Direction, bool) {
	switch Direction(strings.TrimSpace(s)) {
	case Asc, Desc:
		return Direction(strings.TrimSpace(s)), true
	}
	return "", false
}

// State is the table-header sort state: clicking the active key toggles
// direction, clicking a new key resets to ascending.
type State struct {
	Key       Key
	Direction Direction
}

func NewState() State {
	return State{Key: KeyPickupLocation, Direction: Asc}
}

func (s State) Toggle(key Key) State {
	if s.Key == key && s.Direction == Asc {
		return State{Key: key, Direction: Desc}
	}
	return State{Key: key, Direction: Asc}
}

// Sort projects the id-to-record mapping into an ordered slice. Records
// missing a value for the active key compare equal and keep their base
// order; the base order is ascending id so the projection is deterministic
// regardless of map iteration.
func Sort(records map[string]domain.BinRecord, key Key, dir Direction) []domain.BinRecord {
	out := make([]domain.BinRecord, 0, len(records))
	for _, r := range records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j], key)
		if dir == Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compare(a, b domain.BinRecord, key Key) int {
	av, bv := fieldValue(a, key), fieldValue(b, key)
	if av == "" || bv == "" {
		return 0
	}

	if key == KeyDate {
		at, aok := utils.ParseBookingDate(av)
		bt, bok := utils.ParseBookingDate(bv)
		if !aok || !bok {
			return 0
		}
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(av, bv)
}

func fieldValue(r domain.BinRecord, key Key) string {
	switch key {
	case KeyPickupLocation:
		return r.PickupLocation
	case KeyReceiverName:
		return r.ReceiverName
	case KeyDropLocation:
		return r.DropLocation
	case KeyContact:
		return r.Contact
	case KeyDate:
		return r.Date
	}
	return ""
}
