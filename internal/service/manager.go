package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/globalmatt/wavetraffic/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DirectiveSink определяет контракт потока команд рендеринга между сессиями и их подписчиками
type DirectiveSink interface {
	Register(sessionID string)
	Publish(ctx context.Context, sessionID string, directive models.Directive) error
	Subscribe(sessionID string) (<-chan models.Directive, error)
	CloseSession(sessionID string)
}

// SessionService определяет контракт управления сессиями и доставки их событий
type SessionService interface {
	CreateSession(ctx context.Context) (*models.SessionBootstrap, error)
	CloseSession(ctx context.Context, sessionID string) error
	ViewportSettled(ctx context.Context, sessionID string, region models.BoundingRegion, zoom int) error
	MarkerClicked(ctx context.Context, sessionID, incidentID string) error
	ListItemClicked(ctx context.Context, sessionID, incidentID string) error
	DismissSelection(ctx context.Context, sessionID string) error
	ToggleDrawer(ctx context.Context, sessionID string) (bool, error)
	ReportRowVisibility(ctx context.Context, sessionID, incidentID string, seq uint64, fullyVisible bool) error
	Snapshot(ctx context.Context, sessionID string) (*models.ViewSnapshot, error)
	Subscribe(ctx context.Context, sessionID string) (<-chan models.Directive, error)
	ActiveSessions() int
	StartJanitor(ctx context.Context)
}

// SessionOptions задаёт параметры жизненного цикла сессий и поведения карты
type SessionOptions struct {
	TTL           time.Duration
	SweepInterval time.Duration
	MinSelectZoom int
	DefaultZoom   int
	DefaultCenter models.LatLng
}

type sessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	store    IncidentStore
	sink     DirectiveSink
	opts     SessionOptions
	logger   *logrus.Logger
}

func NewSessionManager(store IncidentStore, sink DirectiveSink, opts SessionOptions, logger *logrus.Logger) SessionService {
	return &sessionManager{
		sessions: make(map[string]*Session),
		store:    store,
		sink:     sink,
		opts:     opts,
		logger:   logger,
	}
}

// CreateSession регистрирует нового клиента и выдаёт ему стартовый пакет
func (m *sessionManager) CreateSession(ctx context.Context) (*models.SessionBootstrap, error) {
	id := uuid.New().String()
	log := m.logger.WithFields(logrus.Fields{
		"service":    "session_manager",
		"method":     "CreateSession",
		"session_id": id,
	})

	m.sink.Register(id)
	session := NewSession(id, m.store, m.sink, m.opts, m.logger)

	m.mu.Lock()
	m.sessions[id] = session
	m.mu.Unlock()

	log.WithField("markers", len(session.Bootstrap().Markers)).Info("Session created")
	return session.Bootstrap(), nil
}

// CloseSession завершает сессию и закрывает её поток команд
func (m *sessionManager) CloseSession(ctx context.Context, sessionID string) error {
	log := m.logger.WithFields(logrus.Fields{
		"service":    "session_manager",
		"method":     "CloseSession",
		"session_id": sessionID,
	})

	m.mu.Lock()
	_, ok := m.sessions[sessionID]
	if ok {
		delete(m.sessions, sessionID)
	}
	m.mu.Unlock()

	if !ok {
		log.Warn("Close requested for unknown session")
		return fmt.Errorf("service: session %s: %w", sessionID, ErrSessionNotFound)
	}

	m.sink.CloseSession(sessionID)
	log.Info("Session closed")
	return nil
}

// ViewportSettled передаёт сессии событие остановки карты
func (m *sessionManager) ViewportSettled(ctx context.Context, sessionID string, region models.BoundingRegion, zoom int) error {
	session, err := m.session(sessionID)
	if err != nil {
		return err
	}
	session.Touch()
	return session.ViewportSettled(ctx, region, zoom)
}

// MarkerClicked передаёт сессии щелчок по маркеру
func (m *sessionManager) MarkerClicked(ctx context.Context, sessionID, incidentID string) error {
	session, err := m.session(sessionID)
	if err != nil {
		return err
	}
	session.Touch()
	return session.MarkerClicked(ctx, incidentID)
}

// ListItemClicked передаёт сессии щелчок по строке списка
func (m *sessionManager) ListItemClicked(ctx context.Context, sessionID, incidentID string) error {
	session, err := m.session(sessionID)
	if err != nil {
		return err
	}
	session.Touch()
	return session.ListItemClicked(ctx, incidentID)
}

// DismissSelection передаёт сессии запрос на сброс выбора
func (m *sessionManager) DismissSelection(ctx context.Context, sessionID string) error {
	session, err := m.session(sessionID)
	if err != nil {
		return err
	}
	session.Touch()
	return session.DismissSelection(ctx)
}

// ToggleDrawer передаёт сессии переключение шторки списка
func (m *sessionManager) ToggleDrawer(ctx context.Context, sessionID string) (bool, error) {
	session, err := m.session(sessionID)
	if err != nil {
		return false, err
	}
	session.Touch()
	return session.ToggleDrawer(ctx)
}

// ReportRowVisibility передаёт сессии отчёт о видимости строки
func (m *sessionManager) ReportRowVisibility(ctx context.Context, sessionID, incidentID string, seq uint64, fullyVisible bool) error {
	session, err := m.session(sessionID)
	if err != nil {
		return err
	}
	session.Touch()
	return session.ReportRowVisibility(ctx, incidentID, seq, fullyVisible)
}

// Snapshot возвращает состояние представления сессии
func (m *sessionManager) Snapshot(ctx context.Context, sessionID string) (*models.ViewSnapshot, error) {
	session, err := m.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.Touch()
	return session.Snapshot(), nil
}

// Subscribe возвращает канал команд рендеринга сессии
func (m *sessionManager) Subscribe(ctx context.Context, sessionID string) (<-chan models.Directive, error) {
	session, err := m.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.Touch()

	ch, err := m.sink.Subscribe(sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: could not subscribe to session stream: %w", err)
	}
	return ch, nil
}

// ActiveSessions возвращает число открытых сессий
func (m *sessionManager) ActiveSessions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// StartJanitor запускает горутину, закрывающую простаивающие сессии
func (m *sessionManager) StartJanitor(ctx context.Context) {
	m.logger.Info("Starting session janitor...")
	go func() {
		ticker := time.NewTicker(m.opts.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				m.logger.Info("Stopping session janitor.")
				return
			case <-ticker.C:
				m.sweep()
			}
		}
	}()
}

// sweep закрывает сессии, простаивающие дольше TTL
func (m *sessionManager) sweep() {
	deadline := time.Now().Add(-m.opts.TTL)

	m.mu.Lock()
	expired := make([]string, 0)
	for id, session := range m.sessions {
		if session.LastSeen().Before(deadline) {
			expired = append(expired, id)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, id := range expired {
		m.sink.CloseSession(id)
		m.logger.WithFields(logrus.Fields{
			"service":    "session_manager",
			"session_id": id,
		}).Info("Idle session expired")
	}
}

func (m *sessionManager) session(sessionID string) (*Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("service: session %s: %w", sessionID, ErrSessionNotFound)
	}
	return session, nil
}
