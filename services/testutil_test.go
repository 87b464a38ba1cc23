package services

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/necropharaoh/qr-menu-system/entity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

// newTestDB opens a fresh in-memory SQLite database with the full schema,
// including the partial unique index guarding pending waiter calls. A single
// connection keeps the shared-cache database alive and serializes access.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Table{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.WaiterCall{},
	))
	require.NoError(t, db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_waiter_calls_one_pending
		ON waiter_calls(table_id) WHERE status = 'pending' AND deleted_at IS NULL`).Error)

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func mustCreateTable(t *testing.T, db *gorm.DB, number int) *entity.Table {
	t.Helper()
	table := entity.Table{TableNumber: number, Status: entity.TableAvailable}
	require.NoError(t, db.Create(&table).Error)
	return &table
}

// capturePublisher records published events for assertions.
type capturePublisher struct {
	mu     sync.Mutex
	events []capturedEvent
}

type capturedEvent struct {
	Channel string
	Event   string
	Payload any
}

func (p *capturePublisher) Publish(channel, event string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, capturedEvent{Channel: channel, Event: event, Payload: payload})
}

func (p *capturePublisher) count(channel, event string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e.Channel == channel && e.Event == event {
			n++
		}
	}
	return n
}
