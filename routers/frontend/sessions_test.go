package frontend

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unicsmcr/activity_board/board"
	"github.com/unicsmcr/activity_board/config"
	mock_services "github.com/unicsmcr/activity_board/mocks/services"
	"github.com/unicsmcr/activity_board/testutils"
	"go.uber.org/zap"
)

const testIdleTimeout = 30 * time.Minute

func setupSessionStore(t *testing.T) (*sessionStore, *testutils.ManualScheduler) {
	ctrl := gomock.NewController(t)
	mockAService := mock_services.NewMockActivityService(ctrl)
	scheduler := testutils.NewManualScheduler(time.Date(2024, time.September, 2, 15, 30, 0, 0, time.UTC))
	cfg := &config.AppConfig{}

	store := newSessionStore(testIdleTimeout, scheduler, func() *session {
		controller := board.NewController(zap.NewNop(), cfg, mockAService, scheduler)
		return &session{
			controller: controller,
			dispatcher: board.NewDispatcher(zap.NewNop(), controller),
		}
	})

	return store, scheduler
}

func Test_sessionStore_get__should_return_false_for_unknown_id(t *testing.T) {
	store, _ := setupSessionStore(t)

	_, ok := store.get("8f1c1bde-0d4f-4b7e-a2a3-44f1f0a6c2a1")

	assert.False(t, ok)
}

func Test_sessionStore_create__should_return_session_retrievable_by_id(t *testing.T) {
	store, _ := setupSessionStore(t)

	id, created := store.create()

	got, ok := store.get(id)
	require.True(t, ok)
	assert.Same(t, created, got)
	assert.Equal(t, 1, store.count())
}

func Test_sessionStore_create__should_use_distinct_ids(t *testing.T) {
	store, _ := setupSessionStore(t)

	id1, _ := store.create()
	id2, _ := store.create()

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, store.count())
}

func Test_sessionStore_get__should_keep_session_alive_while_used(t *testing.T) {
	store, scheduler := setupSessionStore(t)
	id, _ := store.create()

	scheduler.Advance(testIdleTimeout - time.Minute)
	_, ok := store.get(id)
	require.True(t, ok)

	scheduler.Advance(testIdleTimeout - time.Minute)
	_, ok = store.get(id)
	assert.True(t, ok)
}

func Test_sessionStore_get__should_drop_and_close_idle_session(t *testing.T) {
	store, scheduler := setupSessionStore(t)
	id, sess := store.create()
	updates, _ := sess.controller.Subscribe()
	<-updates

	scheduler.Advance(testIdleTimeout + time.Second)

	_, ok := store.get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, store.count())

	_, open := <-updates
	assert.False(t, open)
}

func Test_sessionStore_create__should_sweep_idle_sessions(t *testing.T) {
	store, scheduler := setupSessionStore(t)
	store.create()
	store.create()

	scheduler.Advance(testIdleTimeout + time.Second)
	store.create()

	assert.Equal(t, 1, store.count())
}
