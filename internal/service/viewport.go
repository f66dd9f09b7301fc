package service

import (
	"context"

	"github.com/globalmatt/wavetraffic/internal/models"
)

// ComputeVisible возвращает происшествия, попадающие в область, сохраняя исходный порядок.
// Решение о попадании принимает только сама область через Contains.
func ComputeVisible(incidents []*models.Incident, region models.BoundingRegion) []*models.Incident {
	visible := make([]*models.Incident, 0, len(incidents))
	for _, incident := range incidents {
		if region.Contains(incident.Position()) {
			visible = append(visible, incident)
		}
	}
	return visible
}

// ViewportFilter пересчитывает видимый набор происшествий по мере движения карты.
// До первого зафиксированного окна просмотра видимый набор пуст.
type ViewportFilter struct {
	region   *models.BoundingRegion
	visible  []*models.Incident
	onChange func(ctx context.Context, visible []*models.Incident)
}

func NewViewportFilter(onChange func(ctx context.Context, visible []*models.Incident)) *ViewportFilter {
	return &ViewportFilter{
		visible:  make([]*models.Incident, 0),
		onChange: onChange,
	}
}

// Settle фиксирует новое окно просмотра, пересчитывает видимый набор и уведомляет наблюдателя.
// Некорректная область отклоняется, текущее состояние сохраняется.
func (f *ViewportFilter) Settle(ctx context.Context, incidents []*models.Incident, region models.BoundingRegion) error {
	if !region.Valid() {
		return ErrInvalidRegion
	}
	f.region = &region
	f.recompute(ctx, incidents)
	return nil
}

// Refresh пересчитывает видимый набор по текущему окну; без зафиксированного окна ничего не делает
func (f *ViewportFilter) Refresh(ctx context.Context, incidents []*models.Incident) {
	if f.region == nil {
		return
	}
	f.recompute(ctx, incidents)
}

func (f *ViewportFilter) recompute(ctx context.Context, incidents []*models.Incident) {
	f.visible = ComputeVisible(incidents, *f.region)
	if f.onChange != nil {
		f.onChange(ctx, f.visible)
	}
}

// Visible возвращает текущий видимый набор в порядке исходного списка
func (f *ViewportFilter) Visible() []*models.Incident {
	return f.visible
}

// IsVisible сообщает, входит ли происшествие в текущий видимый набор
func (f *ViewportFilter) IsVisible(id string) bool {
	for _, incident := range f.visible {
		if incident.ID == id {
			return true
		}
	}
	return false
}

// HasRegion сообщает, было ли уже зафиксировано окно просмотра
func (f *ViewportFilter) HasRegion() bool {
	return f.region != nil
}
