package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/necropharaoh/qr-menu-system/entity"
	"github.com/necropharaoh/qr-menu-system/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCallService(t *testing.T) (*WaiterCallService, *gorm.DB, *capturePublisher) {
	t.Helper()
	db := newTestDB(t)
	pub := &capturePublisher{}
	svc := NewWaiterCallService(db, repository.NewWaiterCallRepository(db), pub)
	return svc, db, pub
}

func TestCreateCall(t *testing.T) {
	svc, db, pub := newCallService(t)
	table := mustCreateTable(t, db, 5)

	call, err := svc.Create(table.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CallPending, call.Status)

	assert.Equal(t, 1, pub.count(ChannelAdmin, EventWaiterCall))
	assert.Equal(t, 1, pub.count(ChannelAdmin, EventSoundAlert))
	assert.Equal(t, 1, pub.count(TableChannel(table.ID), EventWaiterCallConfirm))
}

func TestCreateCallUnknownTable(t *testing.T) {
	svc, _, _ := newCallService(t)
	_, err := svc.Create(404)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSecondPendingCallConflicts(t *testing.T) {
	svc, db, _ := newCallService(t)
	table := mustCreateTable(t, db, 5)

	_, err := svc.Create(table.ID)
	require.NoError(t, err)

	_, err = svc.Create(table.ID)
	assert.True(t, errors.Is(err, ErrConflict))

	// resolving frees the slot
	var call entity.WaiterCall
	require.NoError(t, db.Where("table_id = ?", table.ID).First(&call).Error)
	require.NoError(t, svc.UpdateStatus(call.ID, entity.CallResolved))

	_, err = svc.Create(table.ID)
	assert.NoError(t, err)
}

func TestConcurrentCreatesYieldOnePending(t *testing.T) {
	svc, db, _ := newCallService(t)
	table := mustCreateTable(t, db, 9)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(table.ID)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		}
	}
	assert.Equal(t, 1, successes)

	var pending int64
	require.NoError(t, db.Model(&entity.WaiterCall{}).
		Where("table_id = ? AND status = ?", table.ID, entity.CallPending).
		Count(&pending).Error)
	assert.Equal(t, int64(1), pending)
}

func TestResolveStampsResolvedAt(t *testing.T) {
	svc, db, pub := newCallService(t)
	table := mustCreateTable(t, db, 2)

	call, err := svc.Create(table.ID)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(call.ID, entity.CallResolved))

	var got entity.WaiterCall
	require.NoError(t, db.First(&got, call.ID).Error)
	require.NotNil(t, got.ResolvedAt)
	assert.False(t, got.ResolvedAt.Before(got.CreatedAt))
	assert.Equal(t, 1, pub.count(TableChannel(table.ID), EventWaiterCallResolved))

	// moving away from resolved clears the stamp
	require.NoError(t, svc.UpdateStatus(call.ID, entity.CallInProgress))
	var after entity.WaiterCall
	require.NoError(t, db.First(&after, call.ID).Error)
	assert.Nil(t, after.ResolvedAt)
}

func TestUpdateStatusValidation(t *testing.T) {
	svc, db, _ := newCallService(t)
	table := mustCreateTable(t, db, 2)
	call, err := svc.Create(table.ID)
	require.NoError(t, err)

	assert.True(t, errors.Is(svc.UpdateStatus(call.ID, entity.CallStatus("shouting")), ErrValidation))
	assert.True(t, errors.Is(svc.UpdateStatus(999, entity.CallResolved), ErrNotFound))
}

func TestResolveAll(t *testing.T) {
	svc, db, pub := newCallService(t)
	for n := 1; n <= 3; n++ {
		table := mustCreateTable(t, db, n)
		_, err := svc.Create(table.ID)
		require.NoError(t, err)
	}

	count, err := svc.ResolveAll()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, 1, pub.count(ChannelAdmin, EventNotification))

	var pending int64
	require.NoError(t, db.Model(&entity.WaiterCall{}).
		Where("status = ?", entity.CallPending).Count(&pending).Error)
	assert.Zero(t, pending)

	var unstamped int64
	require.NoError(t, db.Model(&entity.WaiterCall{}).
		Where("status = ? AND resolved_at IS NULL", entity.CallResolved).Count(&unstamped).Error)
	assert.Zero(t, unstamped)

	// nothing left to resolve
	count, err = svc.ResolveAll()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestListPendingIsOldestFirst(t *testing.T) {
	svc, db, _ := newCallService(t)
	first := mustCreateTable(t, db, 1)
	second := mustCreateTable(t, db, 2)

	c1, err := svc.Create(first.ID)
	require.NoError(t, err)
	c2, err := svc.Create(second.ID)
	require.NoError(t, err)

	// force distinct timestamps; sub-millisecond creates can collide
	base := time.Now().Add(-time.Hour)
	require.NoError(t, db.Model(&entity.WaiterCall{}).Where("id = ?", c1.ID).
		Update("created_at", base).Error)
	require.NoError(t, db.Model(&entity.WaiterCall{}).Where("id = ?", c2.ID).
		Update("created_at", base.Add(time.Minute)).Error)

	calls, err := svc.ListPending()
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, c1.ID, calls[0].ID)
	assert.Equal(t, 1, calls[0].TableNumber)
	assert.Equal(t, c2.ID, calls[1].ID)
}

func TestListForTableNewestFirst(t *testing.T) {
	svc, db, _ := newCallService(t)
	table := mustCreateTable(t, db, 6)

	c1, err := svc.Create(table.ID)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(c1.ID, entity.CallResolved))
	c2, err := svc.Create(table.ID)
	require.NoError(t, err)

	base := time.Now().Add(-time.Hour)
	require.NoError(t, db.Model(&entity.WaiterCall{}).Where("id = ?", c1.ID).
		Update("created_at", base).Error)
	require.NoError(t, db.Model(&entity.WaiterCall{}).Where("id = ?", c2.ID).
		Update("created_at", base.Add(time.Minute)).Error)

	calls, err := svc.ListForTable(table.ID)
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, c2.ID, calls[0].ID)
}

func TestDeleteCall(t *testing.T) {
	svc, db, _ := newCallService(t)
	table := mustCreateTable(t, db, 1)
	call, err := svc.Create(table.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(call.ID))
	assert.True(t, errors.Is(svc.Delete(call.ID), ErrNotFound))
}
