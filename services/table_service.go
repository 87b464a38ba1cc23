package services

import (
	"errors"
	"fmt"

	"github.com/necropharaoh/qr-menu-system/entity"
	"github.com/necropharaoh/qr-menu-system/repository"
	"github.com/necropharaoh/qr-menu-system/utils"
	"gorm.io/gorm"
)

type TableService struct {
	Repo      *repository.TableRepository
	Orders    *OrderService
	PublicURL string
}

func NewTableService(repo *repository.TableRepository, orders *OrderService, publicURL string) *TableService {
	return &TableService{Repo: repo, Orders: orders, PublicURL: publicURL}
}

func (s *TableService) List() ([]entity.Table, error) {
	return s.Repo.List()
}

func (s *TableService) Create(tableNumber int, qrCode string) (*entity.Table, error) {
	if tableNumber <= 0 {
		return nil, fmt.Errorf("%w: table_number is required", ErrValidation)
	}
	if qrCode == "" {
		qrCode = utils.BuildTableQRPayload(s.PublicURL, tableNumber)
	}

	t := entity.Table{TableNumber: tableNumber, Status: entity.TableAvailable, QRCode: qrCode}
	if err := s.Repo.Create(&t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: table number already exists", ErrConflict)
		}
		return nil, err
	}
	return &t, nil
}

func (s *TableService) Update(id uint, tableNumber int, qrCode string, status entity.TableStatus) error {
	if status != "" && !status.Valid() {
		return fmt.Errorf("%w: invalid table status %q", ErrValidation, status)
	}

	fields := map[string]any{}
	if tableNumber > 0 {
		fields["table_number"] = tableNumber
	}
	if qrCode != "" {
		fields["qr_code"] = qrCode
	}
	if status != "" {
		fields["status"] = status
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: nothing to update", ErrValidation)
	}

	affected, err := s.Repo.UpdateFields(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: table number already exists", ErrConflict)
		}
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: table not found", ErrNotFound)
	}
	return nil
}

func (s *TableService) UpdateStatus(id uint, status entity.TableStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: invalid table status %q", ErrValidation, status)
	}
	affected, err := s.Repo.UpdateFields(id, map[string]any{"status": status})
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: table not found", ErrNotFound)
	}
	return nil
}

// RegenerateQR replaces the table's QR payload with a fresh token.
func (s *TableService) RegenerateQR(id uint) (string, error) {
	t, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: table not found", ErrNotFound)
		}
		return "", err
	}

	qr := utils.BuildTableQRPayload(s.PublicURL, t.TableNumber)
	if _, err := s.Repo.UpdateFields(id, map[string]any{"qr_code": qr}); err != nil {
		return "", err
	}
	return qr, nil
}

func (s *TableService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: table not found", ErrNotFound)
	}
	return nil
}

type TableDetails struct {
	Table  entity.Table              `json:"table"`
	Orders []repository.OrderSummary `json:"orders"`
}

// Details returns the table together with its active orders.
func (s *TableService) Details(id uint) (*TableDetails, error) {
	t, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: table not found", ErrNotFound)
		}
		return nil, err
	}

	orders, err := s.Orders.ListActiveForTable(t.ID)
	if err != nil {
		return nil, err
	}
	return &TableDetails{Table: *t, Orders: orders}, nil
}
