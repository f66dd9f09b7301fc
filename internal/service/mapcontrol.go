package service

import (
	"context"

	"github.com/globalmatt/wavetraffic/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// mapControl передаёт карте клиента команды позиционирования и отслеживает известный масштаб
type mapControl struct {
	publisher DirectivePublisher
	logger    *logrus.Logger
	sessionID string
	zoom      int
}

func newMapControl(publisher DirectivePublisher, initialZoom int, logger *logrus.Logger, sessionID string) *mapControl {
	return &mapControl{
		publisher: publisher,
		logger:    logger,
		sessionID: sessionID,
		zoom:      initialZoom,
	}
}

// ObserveZoom запоминает масштаб, о котором сообщила карта после остановки движения
func (m *mapControl) ObserveZoom(zoom int) {
	m.zoom = zoom
}

// PanTo отправляет карте команду перецентрирования
func (m *mapControl) PanTo(ctx context.Context, point models.LatLng) {
	m.publish(ctx, models.Directive{
		Type:   models.DirectiveMapPanTo,
		Center: &point,
	})
}

// RaiseZoomTo поднимает масштаб карты до нижней границы; если карта уже ближе, команда не отправляется
func (m *mapControl) RaiseZoomTo(ctx context.Context, zoom int) {
	if m.zoom >= zoom {
		return
	}
	m.zoom = zoom
	m.publish(ctx, models.Directive{
		Type: models.DirectiveMapSetZoom,
		Zoom: zoom,
	})
}

// publish отправляет команду; ошибка доставки не прерывает обработку события
func (m *mapControl) publish(ctx context.Context, directive models.Directive) {
	if err := m.publisher.Publish(ctx, directive); err != nil {
		m.logger.WithFields(logrus.Fields{
			"service":    "map_control",
			"session_id": m.sessionID,
			"directive":  directive.Type,
		}).WithError(err).Warn("Failed to publish map directive")
	}
}

// markerIndex связывает происшествия с дескрипторами маркеров, созданными для сессии
type markerIndex struct {
	handles map[string]string
	refs    []models.MarkerRef
}

func newMarkerIndex(incidents []*models.Incident) *markerIndex {
	index := &markerIndex{
		handles: make(map[string]string, len(incidents)),
		refs:    make([]models.MarkerRef, 0, len(incidents)),
	}
	for _, incident := range incidents {
		handle := uuid.New().String()
		index.handles[incident.ID] = handle
		index.refs = append(index.refs, models.MarkerRef{
			Handle:     handle,
			IncidentID: incident.ID,
			Position:   incident.Position(),
			Icon:       incident.AlertType.Icon(),
			Title:      incident.Title,
		})
	}
	return index
}

// HandleFor возвращает дескриптор маркера происшествия
func (x *markerIndex) HandleFor(incidentID string) (string, bool) {
	handle, ok := x.handles[incidentID]
	return handle, ok
}

// Refs возвращает описания маркеров для стартового пакета сессии
func (x *markerIndex) Refs() []models.MarkerRef {
	return x.refs
}
