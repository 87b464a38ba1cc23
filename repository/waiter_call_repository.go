package repository

import (
	"time"

	"github.com/necropharaoh/qr-menu-system/entity"
	"gorm.io/gorm"
)

type WaiterCallRepository struct {
	DB *gorm.DB
}

func NewWaiterCallRepository(db *gorm.DB) *WaiterCallRepository {
	return &WaiterCallRepository{DB: db}
}

func (r *WaiterCallRepository) Create(tx *gorm.DB, call *entity.WaiterCall) error {
	return tx.Create(call).Error
}

// HasPending reports whether the table already has an unresolved call.
func (r *WaiterCallRepository) HasPending(tx *gorm.DB, tableID uint) (bool, error) {
	var cnt int64
	err := tx.Model(&entity.WaiterCall{}).
		Where("table_id = ? AND status = ?", tableID, entity.CallPending).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *WaiterCallRepository) Get(callID uint) (*entity.WaiterCall, error) {
	var call entity.WaiterCall
	if err := r.DB.First(&call, callID).Error; err != nil {
		return nil, err
	}
	return &call, nil
}

// UpdateStatus sets resolved_at only for the resolved state and clears it
// otherwise. Returns the matched row count.
func (r *WaiterCallRepository) UpdateStatus(callID uint, status entity.CallStatus, resolvedAt *time.Time) (int64, error) {
	res := r.DB.Model(&entity.WaiterCall{}).
		Where("id = ?", callID).
		Updates(map[string]any{"status": status, "resolved_at": resolvedAt})
	return res.RowsAffected, res.Error
}

// ResolveAllPending flips every pending call to resolved in one statement.
func (r *WaiterCallRepository) ResolveAllPending(now time.Time) (int64, error) {
	res := r.DB.Model(&entity.WaiterCall{}).
		Where("status = ?", entity.CallPending).
		Updates(map[string]any{"status": entity.CallResolved, "resolved_at": now})
	return res.RowsAffected, res.Error
}

func (r *WaiterCallRepository) Delete(callID uint) (int64, error) {
	res := r.DB.Delete(&entity.WaiterCall{}, callID)
	return res.RowsAffected, res.Error
}

// CallSummary annotates a call with its table number for the dashboard.
type CallSummary struct {
	ID          uint              `json:"id"`
	TableID     uint              `json:"table_id"`
	TableNumber int               `json:"table_number"`
	Status      entity.CallStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	ResolvedAt  *time.Time        `json:"resolved_at"`
}

func (r *WaiterCallRepository) summaryQuery() *gorm.DB {
	return r.DB.Table("waiter_calls AS wc").
		Select("wc.id, wc.table_id, t.table_number, wc.status, wc.created_at, wc.resolved_at").
		Joins("LEFT JOIN tables t ON t.id = wc.table_id").
		Where("wc.deleted_at IS NULL")
}

func (r *WaiterCallRepository) ListAll() ([]CallSummary, error) {
	var out []CallSummary
	err := r.summaryQuery().Order("wc.created_at DESC").Scan(&out).Error
	return out, err
}

// ListPending is oldest-first: the table waiting longest is served first.
func (r *WaiterCallRepository) ListPending() ([]CallSummary, error) {
	var out []CallSummary
	err := r.summaryQuery().
		Where("wc.status = ?", entity.CallPending).
		Order("wc.created_at ASC").
		Scan(&out).Error
	return out, err
}

func (r *WaiterCallRepository) ListForTable(tableID uint) ([]CallSummary, error) {
	var out []CallSummary
	err := r.summaryQuery().
		Where("wc.table_id = ?", tableID).
		Order("wc.created_at DESC").
		Scan(&out).Error
	return out, err
}
