package services

import (
	"bps-backend/internal/bin"
	"bps-backend/internal/domain"
	"bps-backend/internal/repositories"
	"bps-backend/internal/utils"
)

// BinService serves the recycle-bin projection and forwards restore intents.
type BinService struct {
	BinRepo   repositories.BinRepository
	RequestID string
	Loader    func() (map[string]domain.BinRecord, error)
}

func (s BinService) loadRecords() (map[string]domain.BinRecord, error) {
	if s.Loader != nil {
		return s.Loader()
	}
	return s.BinRepo.ListDeleted()
}

// List returns the deleted records sorted by the requested column.
func (s BinService) List(key bin.Key, dir bin.Direction) ([]domain.BinRecord, error) {
	records, err := s.loadRecords()
	if err != nil {
		return nil, err
	}
	return bin.Sort(records, key, dir), nil
}

// Restore brings one record back from the bin.
func (s BinService) Restore(id string) error {
	utils.LogEvent(s.RequestID, "bin", "restore", "id="+id)
	return s.BinRepo.Restore(id)
}
