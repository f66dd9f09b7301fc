package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/globalmatt/wavetraffic/internal/models"
	"github.com/globalmatt/wavetraffic/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func defaultSessionOptions() SessionOptions {
	return SessionOptions{
		TTL:           30 * time.Minute,
		SweepInterval: time.Minute,
		MinSelectZoom: 15,
		DefaultZoom:   10,
		DefaultCenter: models.LatLng{Lat: -34.4278, Lng: 150.8931},
	}
}

// newTestSessionManager создает менеджер сессий с мок-хранилищем и мок-стоком команд.
// Ожидания Register и CloseSession каждый тест задаёт сам.
func newTestSessionManager(t *testing.T, opts SessionOptions) (*sessionManager, *mocks.MockDirectiveSink) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockIncidentStore(ctrl)
	sinkMock := mocks.NewMockDirectiveSink(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	incidents := []*models.Incident{
		incidentAt("1", models.AlertTowAllocation, -34.40, 150.88),
		incidentAt("2", models.AlertRoadworks, -34.50, 150.90),
	}
	points := make([]models.LatLng, 0, len(incidents))
	for _, incident := range incidents {
		points = append(points, incident.Position())
	}
	bounds, hasBounds := models.BoundsOf(points)

	storeMock.EXPECT().All().Return(incidents).AnyTimes()
	storeMock.EXPECT().Bounds().Return(bounds, hasBounds).AnyTimes()
	storeMock.EXPECT().
		Get(gomock.Any()).
		DoAndReturn(func(id string) (*models.Incident, bool) {
			for _, incident := range incidents {
				if incident.ID == id {
					return incident, true
				}
			}
			return nil, false
		}).
		AnyTimes()
	sinkMock.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	manager := NewSessionManager(storeMock, sinkMock, opts, logger)
	return manager.(*sessionManager), sinkMock
}

func TestCreateSession_RegistersStream(t *testing.T) {
	// Подготовка
	manager, sinkMock := newTestSessionManager(t, defaultSessionOptions())

	// Ожидания
	sinkMock.EXPECT().Register(gomock.Any()).Times(1)

	// Действие
	bootstrap, err := manager.CreateSession(context.Background())

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, bootstrap)
	assert.NotEmpty(t, bootstrap.SessionID)
	assert.Len(t, bootstrap.Markers, 2)
	assert.Equal(t, 1, manager.ActiveSessions())
}

func TestCreateSession_DistinctIDs(t *testing.T) {
	manager, sinkMock := newTestSessionManager(t, defaultSessionOptions())
	sinkMock.EXPECT().Register(gomock.Any()).Times(2)

	first, err := manager.CreateSession(context.Background())
	require.NoError(t, err)
	second, err := manager.CreateSession(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
	assert.Equal(t, 2, manager.ActiveSessions())
}

func TestCloseSession_Success(t *testing.T) {
	// Подготовка
	manager, sinkMock := newTestSessionManager(t, defaultSessionOptions())
	sinkMock.EXPECT().Register(gomock.Any()).Times(1)
	bootstrap, err := manager.CreateSession(context.Background())
	require.NoError(t, err)

	// Ожидания
	sinkMock.EXPECT().CloseSession(bootstrap.SessionID).Times(1)

	// Действие
	err = manager.CloseSession(context.Background(), bootstrap.SessionID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0, manager.ActiveSessions())
}

func TestCloseSession_NotFound(t *testing.T) {
	manager, _ := newTestSessionManager(t, defaultSessionOptions())

	err := manager.CloseSession(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionManager_RoutesEvents(t *testing.T) {
	// Подготовка
	manager, sinkMock := newTestSessionManager(t, defaultSessionOptions())
	sinkMock.EXPECT().Register(gomock.Any()).Times(1)
	bootstrap, err := manager.CreateSession(context.Background())
	require.NoError(t, err)
	ctx := context.Background()
	id := bootstrap.SessionID

	// Действие: полный путь события от менеджера до представления сессии
	require.NoError(t, manager.ViewportSettled(ctx, id, regionOf(-34.6, 150.7, -34.2, 151.0), 12))
	require.NoError(t, manager.MarkerClicked(ctx, id, "1"))
	require.NoError(t, manager.ReportRowVisibility(ctx, id, "1", 1, false))

	open, err := manager.ToggleDrawer(ctx, id)
	require.NoError(t, err)
	assert.True(t, open)

	// Проверки
	snapshot, err := manager.Snapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "1", snapshot.SelectedID)
	assert.Equal(t, "2 incidents shown", snapshot.CountLabel)
	assert.True(t, snapshot.DrawerOpen)

	require.NoError(t, manager.DismissSelection(ctx, id))
	snapshot, err = manager.Snapshot(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, snapshot.SelectedID)
}

func TestSessionManager_UnknownSession(t *testing.T) {
	manager, _ := newTestSessionManager(t, defaultSessionOptions())
	ctx := context.Background()

	assert.ErrorIs(t, manager.ViewportSettled(ctx, "ghost", regionOf(-34.6, 150.7, -34.2, 151.0), 12), ErrSessionNotFound)
	assert.ErrorIs(t, manager.MarkerClicked(ctx, "ghost", "1"), ErrSessionNotFound)
	assert.ErrorIs(t, manager.ListItemClicked(ctx, "ghost", "1"), ErrSessionNotFound)
	assert.ErrorIs(t, manager.DismissSelection(ctx, "ghost"), ErrSessionNotFound)
	assert.ErrorIs(t, manager.ReportRowVisibility(ctx, "ghost", "1", 1, true), ErrSessionNotFound)

	_, err := manager.ToggleDrawer(ctx, "ghost")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = manager.Snapshot(ctx, "ghost")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = manager.Subscribe(ctx, "ghost")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionManager_Subscribe(t *testing.T) {
	// Подготовка
	manager, sinkMock := newTestSessionManager(t, defaultSessionOptions())
	sinkMock.EXPECT().Register(gomock.Any()).Times(1)
	bootstrap, err := manager.CreateSession(context.Background())
	require.NoError(t, err)

	queue := make(chan models.Directive, 1)
	queue <- models.Directive{Type: models.DirectiveDetailClose}

	// Ожидания
	sinkMock.EXPECT().
		Subscribe(bootstrap.SessionID).
		Return((<-chan models.Directive)(queue), nil).
		Times(1)

	// Действие
	directives, err := manager.Subscribe(context.Background(), bootstrap.SessionID)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, directives)
	directive := <-directives
	assert.Equal(t, models.DirectiveDetailClose, directive.Type)
}

func TestSessionManager_SubscribeSinkError(t *testing.T) {
	manager, sinkMock := newTestSessionManager(t, defaultSessionOptions())
	sinkMock.EXPECT().Register(gomock.Any()).Times(1)
	bootstrap, err := manager.CreateSession(context.Background())
	require.NoError(t, err)

	sinkMock.EXPECT().
		Subscribe(bootstrap.SessionID).
		Return(nil, ErrStreamClosed).
		Times(1)

	_, err = manager.Subscribe(context.Background(), bootstrap.SessionID)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStreamClosed)
	assert.ErrorContains(t, err, "could not subscribe")
}

func TestSessionManager_SweepExpiresIdleSessions(t *testing.T) {
	// Подготовка: TTL заведомо меньше паузы перед уборкой
	opts := defaultSessionOptions()
	opts.TTL = 5 * time.Millisecond
	manager, sinkMock := newTestSessionManager(t, opts)
	sinkMock.EXPECT().Register(gomock.Any()).Times(1)
	bootstrap, err := manager.CreateSession(context.Background())
	require.NoError(t, err)

	// Ожидания
	sinkMock.EXPECT().CloseSession(bootstrap.SessionID).Times(1)

	// Действие
	time.Sleep(20 * time.Millisecond)
	manager.sweep()

	// Проверки
	assert.Equal(t, 0, manager.ActiveSessions())
}

func TestSessionManager_SweepKeepsActiveSessions(t *testing.T) {
	manager, sinkMock := newTestSessionManager(t, defaultSessionOptions())
	sinkMock.EXPECT().Register(gomock.Any()).Times(1)
	_, err := manager.CreateSession(context.Background())
	require.NoError(t, err)

	manager.sweep()

	assert.Equal(t, 1, manager.ActiveSessions())
}

func TestSessionManager_JanitorSweepsInBackground(t *testing.T) {
	// Подготовка
	opts := defaultSessionOptions()
	opts.TTL = time.Millisecond
	opts.SweepInterval = 5 * time.Millisecond
	manager, sinkMock := newTestSessionManager(t, opts)
	sinkMock.EXPECT().Register(gomock.Any()).Times(1)
	bootstrap, err := manager.CreateSession(context.Background())
	require.NoError(t, err)

	swept := make(chan struct{})
	sinkMock.EXPECT().
		CloseSession(bootstrap.SessionID).
		Do(func(string) { close(swept) }).
		Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Действие
	manager.StartJanitor(ctx)

	// Проверки
	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("janitor did not sweep the idle session")
	}
	assert.Equal(t, 0, manager.ActiveSessions())
}
