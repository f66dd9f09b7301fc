package service

import (
	"context"
	"fmt"

	"github.com/globalmatt/wavetraffic/internal/models"
	"github.com/sirupsen/logrus"
)

// Projection превращает изменения состояния сессии в команды рендеринга для браузера.
// Номер seq растёт при каждой установке выбора; им отбрасываются устаревшие
// отчёты о видимости строки.
type Projection struct {
	publisher  DirectivePublisher
	markers    AnchorIndex
	logger     *logrus.Logger
	sessionID  string
	entries    []models.ListEntry
	visibleIDs map[string]bool
	countText  string
	selected   *models.Incident
	seq        uint64
	drawerOpen bool
}

func NewProjection(publisher DirectivePublisher, markers AnchorIndex, logger *logrus.Logger, sessionID string) *Projection {
	return &Projection{
		publisher:  publisher,
		markers:    markers,
		logger:     logger,
		sessionID:  sessionID,
		entries:    make([]models.ListEntry, 0),
		visibleIDs: make(map[string]bool),
		countText:  countLabel(0),
	}
}

// OnVisibleChanged перестраивает список и отправляет команду полного рендеринга.
// Если выбранное происшествие осталось в списке, команда несёт его id для отметки строки.
func (p *Projection) OnVisibleChanged(ctx context.Context, visible []*models.Incident) {
	p.entries = make([]models.ListEntry, 0, len(visible))
	p.visibleIDs = make(map[string]bool, len(visible))
	for _, incident := range visible {
		p.entries = append(p.entries, models.NewListEntry(incident))
		p.visibleIDs[incident.ID] = true
	}
	p.countText = countLabel(len(visible))

	directive := models.Directive{
		Type:       models.DirectiveListRender,
		Incidents:  p.entries,
		CountLabel: p.countText,
	}
	if p.selected != nil && p.visibleIDs[p.selected.ID] {
		directive.IncidentID = p.selected.ID
	}
	p.publish(ctx, directive)
}

// OnSelectionChanged отражает фазу выбора: сброс закрывает карточку,
// установка открывает карточку и запрашивает отметку строки, если та видима
func (p *Projection) OnSelectionChanged(ctx context.Context, selected *models.Incident) {
	if selected == nil {
		p.selected = nil
		p.publish(ctx, models.Directive{Type: models.DirectiveDetailClose})
		return
	}

	p.selected = selected
	p.seq++

	anchor, ok := p.markers.HandleFor(selected.ID)
	if !ok {
		p.logger.WithFields(logrus.Fields{
			"service":     "projection",
			"session_id":  p.sessionID,
			"incident_id": selected.ID,
		}).Warn("No marker handle for selected incident")
	}
	p.publish(ctx, models.Directive{
		Type:        models.DirectiveDetailOpen,
		IncidentID:  selected.ID,
		Anchor:      anchor,
		Title:       selected.Title,
		Description: selected.Description,
		Label:       selected.AlertType.Label(),
	})

	if p.visibleIDs[selected.ID] {
		p.publish(ctx, models.Directive{
			Type:       models.DirectiveListCheckRow,
			IncidentID: selected.ID,
			Seq:        p.seq,
		})
	}
}

// ReportRowVisibility обрабатывает ответ браузера на отметку строки.
// Отчёт о чужом или устаревшем выборе отбрасывается; побеждает последняя записанная фаза.
func (p *Projection) ReportRowVisibility(ctx context.Context, incidentID string, seq uint64, fullyVisible bool) {
	if p.selected == nil || p.selected.ID != incidentID || p.seq != seq {
		p.logger.WithFields(logrus.Fields{
			"service":     "projection",
			"session_id":  p.sessionID,
			"incident_id": incidentID,
			"seq":         seq,
		}).Debug("Stale row visibility report discarded")
		return
	}
	if fullyVisible {
		return
	}
	p.publish(ctx, models.Directive{
		Type:       models.DirectiveListScrollTo,
		IncidentID: incidentID,
	})
}

// ToggleDrawer переключает мобильную шторку списка; выбор происшествия не меняется
func (p *Projection) ToggleDrawer(ctx context.Context) bool {
	p.drawerOpen = !p.drawerOpen
	open := p.drawerOpen
	p.publish(ctx, models.Directive{
		Type:       models.DirectiveDrawerSet,
		DrawerOpen: &open,
	})
	return open
}

// Snapshot возвращает текущее состояние представления для восстановления клиента
func (p *Projection) Snapshot() *models.ViewSnapshot {
	entries := make([]models.ListEntry, len(p.entries))
	copy(entries, p.entries)

	snapshot := &models.ViewSnapshot{
		Visible:    entries,
		CountLabel: p.countText,
		DrawerOpen: p.drawerOpen,
		Seq:        p.seq,
	}
	if p.selected != nil {
		snapshot.SelectedID = p.selected.ID
	}
	return snapshot
}

// publish отправляет команду; ошибка доставки не прерывает обработку события
func (p *Projection) publish(ctx context.Context, directive models.Directive) {
	if err := p.publisher.Publish(ctx, directive); err != nil {
		p.logger.WithFields(logrus.Fields{
			"service":    "projection",
			"session_id": p.sessionID,
			"directive":  directive.Type,
		}).WithError(err).Warn("Failed to publish render directive")
	}
}

// countLabel строит подпись счётчика списка с правильным числом
func countLabel(n int) string {
	if n == 1 {
		return "1 incident shown"
	}
	return fmt.Sprintf("%d incidents shown", n)
}
