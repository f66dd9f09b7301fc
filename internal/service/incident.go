package service

import (
	"context"
	"fmt"

	"github.com/globalmatt/wavetraffic/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentStore определяет контракт неизменяемого набора происшествий, загруженного при старте
type IncidentStore interface {
	All() []*models.Incident
	Get(id string) (*models.Incident, bool)
	Bounds() (models.BoundingRegion, bool)
	Len() int
	Rejected() int
}

// SessionCounter определяет контракт для подсчёта активных сессий
type SessionCounter interface {
	ActiveSessions() int
}

// IncidentService определяет контракт для чтения происшествий и сводных показателей
type IncidentService interface {
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	GetStats(ctx context.Context) (*models.Stats, error)
}

type incidentService struct {
	store    IncidentStore
	sessions SessionCounter
	logger   *logrus.Logger
}

func NewIncidentService(store IncidentStore, sessions SessionCounter, logger *logrus.Logger) IncidentService {
	return &incidentService{
		store:    store,
		sessions: sessions,
		logger:   logger,
	}
}

// ListIncidents возвращает все происшествия в порядке набора данных
func (s *incidentService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})

	incidents := s.store.All()
	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// GetIncident возвращает происшествие по ID
func (s *incidentService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	incident, ok := s.store.Get(id)
	if !ok {
		log.Warn("Incident not found")
		return nil, fmt.Errorf("service: incident %s: %w", id, ErrIncidentNotFound)
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}

// GetStats возвращает сводные показатели сервиса
func (s *incidentService) GetStats(ctx context.Context) (*models.Stats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "GetStats",
	})

	stats := &models.Stats{
		ActiveSessions:  s.sessions.ActiveSessions(),
		IncidentCount:   s.store.Len(),
		RejectedRecords: s.store.Rejected(),
	}

	log.WithField("active_sessions", stats.ActiveSessions).Info("Stats collected successfully")
	return stats, nil
}
