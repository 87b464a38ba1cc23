package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/necropharaoh/qr-menu-system/entity"
	"github.com/necropharaoh/qr-menu-system/repository"
	"gorm.io/gorm"
)

type WaiterCallService struct {
	DB   *gorm.DB
	Repo *repository.WaiterCallRepository
	Pub  Publisher
}

func NewWaiterCallService(db *gorm.DB, repo *repository.WaiterCallRepository, pub Publisher) *WaiterCallService {
	return &WaiterCallService{DB: db, Repo: repo, Pub: pub}
}

// Create registers a table's request for staff attention. The check runs
// inside the transaction and the partial unique index on pending calls backs
// it up, so two racing requests cannot both end up pending.
func (s *WaiterCallService) Create(tableID uint) (*entity.WaiterCall, error) {
	if tableID == 0 {
		return nil, fmt.Errorf("%w: table_id is required", ErrValidation)
	}

	var table entity.Table
	if err := s.DB.Select("id, table_number").First(&table, tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: table not found", ErrNotFound)
		}
		return nil, err
	}

	call := entity.WaiterCall{TableID: tableID, Status: entity.CallPending}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		pending, err := s.Repo.HasPending(tx, tableID)
		if err != nil {
			return err
		}
		if pending {
			return fmt.Errorf("%w: a pending call for this table already exists", ErrConflict)
		}
		return s.Repo.Create(tx, &call)
	})
	if err != nil {
		// The race loser trips the unique index instead of the check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: a pending call for this table already exists", ErrConflict)
		}
		return nil, err
	}

	s.Pub.Publish(ChannelAdmin, EventWaiterCall, map[string]any{
		"call_id": call.ID, "table_id": tableID, "table_number": table.TableNumber,
	})
	s.Pub.Publish(ChannelAdmin, EventSoundAlert, map[string]any{
		"type": EventWaiterCall, "sound": "waiter-call.mp3",
	})
	s.Pub.Publish(TableChannel(tableID), EventWaiterCallConfirm, map[string]any{
		"call_id": call.ID, "message": "Your call has been received, a waiter is on the way.",
	})

	return &call, nil
}

func (s *WaiterCallService) UpdateStatus(callID uint, status entity.CallStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: invalid call status %q", ErrValidation, status)
	}

	var resolvedAt *time.Time
	if status == entity.CallResolved {
		now := time.Now()
		resolvedAt = &now
	}

	affected, err := s.Repo.UpdateStatus(callID, status, resolvedAt)
	if err != nil {
		// Moving a call back to pending while the table already has one.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: a pending call for this table already exists", ErrConflict)
		}
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: waiter call not found", ErrNotFound)
	}

	call, err := s.Repo.Get(callID)
	if err != nil {
		return err
	}

	s.Pub.Publish(ChannelAdmin, EventWaiterCallUpdate, map[string]any{
		"call_id": call.ID, "table_id": call.TableID, "status": status,
	})
	if status == entity.CallResolved {
		s.Pub.Publish(TableChannel(call.TableID), EventWaiterCallResolved, map[string]any{
			"call_id": call.ID, "message": "Your call has been resolved.",
		})
	}
	return nil
}

// ResolveAll clears the whole pending queue in one statement and reports how
// many calls it closed. A single aggregate notification stands in for
// per-call events.
func (s *WaiterCallService) ResolveAll() (int64, error) {
	count, err := s.Repo.ResolveAllPending(time.Now())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.Pub.Publish(ChannelAdmin, EventNotification, map[string]any{
			"type": EventWaiterCallResolved, "resolved_count": count,
		})
	}
	return count, nil
}

func (s *WaiterCallService) Delete(callID uint) error {
	affected, err := s.Repo.Delete(callID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: waiter call not found", ErrNotFound)
	}
	return nil
}

func (s *WaiterCallService) List() ([]repository.CallSummary, error) {
	return s.Repo.ListAll()
}

func (s *WaiterCallService) ListPending() ([]repository.CallSummary, error) {
	return s.Repo.ListPending()
}

func (s *WaiterCallService) ListForTable(tableID uint) ([]repository.CallSummary, error) {
	return s.Repo.ListForTable(tableID)
}
