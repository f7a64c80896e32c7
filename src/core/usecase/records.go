package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"raidmaster/src/core/domain"
	"raidmaster/src/core/ports"
)

// RecordService manages the registration roster. The roster is stored as a
// single newest-first document.
type RecordService struct {
	store ports.KeyValueStore
	log   *slog.Logger
}

func NewRecordService(store ports.KeyValueStore, log *slog.Logger) *RecordService {
	return &RecordService{store: store, log: log}
}

// List returns all records, newest first. An unreadable roster is reported
// as empty.
func (s *RecordService) List(ctx context.Context) ([]domain.RegistrationRecord, error) {
	var records []domain.RegistrationRecord
	found, err := loadDocument(ctx, s.store, ports.KeyRecords, &records)
	switch {
	case domain.IsCorruptDocument(err):
		s.log.Warn("stored records unreadable, treating as empty", "error", err)
		return []domain.RegistrationRecord{}, nil
	case err != nil:
		return nil, err
	case !found || records == nil:
		return []domain.RegistrationRecord{}, nil
	}
	return records, nil
}

// Contains reports whether a record with id exists.
func (s *RecordService) Contains(ctx context.Context, id string) (bool, error) {
	records, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, r := range records {
		if r.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// Append puts record at the front of the roster. Id uniqueness is the
// caller's responsibility.
func (s *RecordService) Append(ctx context.Context, record domain.RegistrationRecord) error {
	records, err := s.List(ctx)
	if err != nil {
		return err
	}
	next := make([]domain.RegistrationRecord, 0, len(records)+1)
	next = append(next, record)
	next = append(next, records...)
	if err := saveDocument(ctx, s.store, ports.KeyRecords, next); err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}
	return nil
}

// RemoveOne deletes the first record with id. Removing an unknown id is
// not an error.
func (s *RecordService) RemoveOne(ctx context.Context, id string) error {
	records, err := s.List(ctx)
	if err != nil {
		return err
	}
	for i, r := range records {
		if r.ID != id {
			continue
		}
		next := append(records[:i:i], records[i+1:]...)
		if err := saveDocument(ctx, s.store, ports.KeyRecords, next); err != nil {
			return fmt.Errorf("failed to remove record: %w", err)
		}
		s.log.Info("record removed", "record_id", id)
		return nil
	}
	return nil
}

// RemoveAll clears the roster.
func (s *RecordService) RemoveAll(ctx context.Context) error {
	if err := s.store.Delete(ctx, ports.KeyRecords); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	s.log.Info("all records removed")
	return nil
}
