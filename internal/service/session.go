package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/globalmatt/wavetraffic/internal/models"
	"github.com/sirupsen/logrus"
)

// DirectivePublisher определяет контракт отправки команд рендеринга одной сессии
type DirectivePublisher interface {
	Publish(ctx context.Context, directive models.Directive) error
}

// MapController определяет контракт управления картой клиента
type MapController interface {
	ObserveZoom(zoom int)
	PanTo(ctx context.Context, point models.LatLng)
	RaiseZoomTo(ctx context.Context, zoom int)
}

// AnchorIndex определяет контракт поиска дескриптора маркера по происшествию
type AnchorIndex interface {
	HandleFor(incidentID string) (string, bool)
}

// sessionPublisher привязывает общий канал команд к конкретной сессии
type sessionPublisher struct {
	sink      DirectiveSink
	sessionID string
}

func (p *sessionPublisher) Publish(ctx context.Context, directive models.Directive) error {
	return p.sink.Publish(ctx, p.sessionID, directive)
}

// Session хранит состояние одного подключённого клиента: окно просмотра,
// видимый набор, выбор и представление. События сессии обрабатываются
// строго по одному под общим мьютексом.
type Session struct {
	id            string
	mu            sync.Mutex
	store         IncidentStore
	filter        *ViewportFilter
	selection     *SelectionController
	projection    *Projection
	maps          MapController
	markers       *markerIndex
	bootstrap     *models.SessionBootstrap
	minSelectZoom int
	lastSeen      time.Time
	logger        *logrus.Logger
}

func NewSession(id string, store IncidentStore, sink DirectiveSink, opts SessionOptions, logger *logrus.Logger) *Session {
	publisher := &sessionPublisher{sink: sink, sessionID: id}
	markers := newMarkerIndex(store.All())
	projection := NewProjection(publisher, markers, logger, id)

	session := &Session{
		id:            id,
		store:         store,
		projection:    projection,
		maps:          newMapControl(publisher, opts.DefaultZoom, logger, id),
		markers:       markers,
		minSelectZoom: opts.MinSelectZoom,
		lastSeen:      time.Now(),
		logger:        logger,
	}
	session.filter = NewViewportFilter(projection.OnVisibleChanged)
	session.selection = NewSelectionController(projection.OnSelectionChanged)

	bootstrap := &models.SessionBootstrap{
		SessionID:     id,
		Markers:       markers.Refs(),
		DefaultCenter: opts.DefaultCenter,
		DefaultZoom:   opts.DefaultZoom,
	}
	if bounds, ok := store.Bounds(); ok {
		bootstrap.FitBounds = &bounds
	}
	session.bootstrap = bootstrap

	return session
}

// ID возвращает идентификатор сессии
func (s *Session) ID() string {
	return s.id
}

// Bootstrap возвращает стартовый пакет сессии
func (s *Session) Bootstrap() *models.SessionBootstrap {
	return s.bootstrap
}

// Touch отмечает активность сессии
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
}

// LastSeen возвращает время последней активности сессии
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// ViewportSettled обрабатывает остановку карты: запоминает масштаб и пересчитывает видимый набор
func (s *Session) ViewportSettled(ctx context.Context, region models.BoundingRegion, zoom int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "ViewportSettled",
		"session_id": s.id,
		"zoom":       zoom,
	})

	if err := s.filter.Settle(ctx, s.store.All(), region); err != nil {
		log.WithError(err).Warn("Viewport rejected, visible set retained")
		return fmt.Errorf("service: could not settle viewport: %w", err)
	}
	s.maps.ObserveZoom(zoom)

	log.WithField("visible", len(s.filter.Visible())).Info("Viewport settled")
	return nil
}

// MarkerClicked обрабатывает щелчок по маркеру на карте
func (s *Session) MarkerClicked(ctx context.Context, incidentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service":     "session",
		"method":      "MarkerClicked",
		"session_id":  s.id,
		"incident_id": incidentID,
	})

	incident, ok := s.store.Get(incidentID)
	if !ok {
		s.selection.Dismiss(ctx)
		log.Warn("Marker click for unknown incident, selection dismissed")
		return fmt.Errorf("service: incident %s: %w", incidentID, ErrIncidentNotFound)
	}

	s.selection.Select(ctx, incident)
	log.Info("Incident selected from marker")
	return nil
}

// ListItemClicked обрабатывает щелчок по строке списка: выбор, перецентрирование и подъём масштаба
func (s *Session) ListItemClicked(ctx context.Context, incidentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service":     "session",
		"method":      "ListItemClicked",
		"session_id":  s.id,
		"incident_id": incidentID,
	})

	incident, ok := s.store.Get(incidentID)
	if !ok {
		s.selection.Dismiss(ctx)
		log.Warn("List click for unknown incident, selection dismissed")
		return fmt.Errorf("service: incident %s: %w", incidentID, ErrIncidentNotFound)
	}

	s.selection.Select(ctx, incident)
	s.maps.PanTo(ctx, incident.Position())
	s.maps.RaiseZoomTo(ctx, s.minSelectZoom)
	log.Info("Incident selected from list")
	return nil
}

// DismissSelection сбрасывает выбор; без активного выбора ничего не происходит
func (s *Session) DismissSelection(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dismissed := s.selection.Dismiss(ctx)
	s.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "DismissSelection",
		"session_id": s.id,
		"dismissed":  dismissed,
	}).Info("Selection dismiss handled")
	return nil
}

// ToggleDrawer переключает мобильную шторку списка
func (s *Session) ToggleDrawer(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	open := s.projection.ToggleDrawer(ctx)
	s.logger.WithFields(logrus.Fields{
		"service":     "session",
		"method":      "ToggleDrawer",
		"session_id":  s.id,
		"drawer_open": open,
	}).Info("Drawer toggled")
	return open, nil
}

// ReportRowVisibility обрабатывает отчёт браузера о видимости отмеченной строки
func (s *Session) ReportRowVisibility(ctx context.Context, incidentID string, seq uint64, fullyVisible bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projection.ReportRowVisibility(ctx, incidentID, seq, fullyVisible)
	return nil
}

// Snapshot возвращает текущее состояние представления сессии
func (s *Session) Snapshot() *models.ViewSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projection.Snapshot()
}
