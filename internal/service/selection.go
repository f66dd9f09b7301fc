package service

import (
	"context"

	"github.com/globalmatt/wavetraffic/internal/models"
)

// SelectionController хранит единственное выбранное происшествие сессии.
// Любой выбор проходит две фазы: сначала сброс текущего, затем установка нового,
// и наблюдатель видит обе фазы, даже если повторно выбрано то же происшествие.
type SelectionController struct {
	current  *models.Incident
	onChange func(ctx context.Context, selected *models.Incident)
}

func NewSelectionController(onChange func(ctx context.Context, selected *models.Incident)) *SelectionController {
	return &SelectionController{onChange: onChange}
}

// Select выбирает происшествие, сбросив предыдущий выбор
func (c *SelectionController) Select(ctx context.Context, incident *models.Incident) {
	c.current = nil
	c.notify(ctx, nil)
	c.current = incident
	c.notify(ctx, incident)
}

// Dismiss сбрасывает выбор; без активного выбора ничего не происходит и наблюдатель не уведомляется
func (c *SelectionController) Dismiss(ctx context.Context) bool {
	if c.current == nil {
		return false
	}
	c.current = nil
	c.notify(ctx, nil)
	return true
}

// Selected возвращает текущее выбранное происшествие или nil
func (c *SelectionController) Selected() *models.Incident {
	return c.current
}

func (c *SelectionController) notify(ctx context.Context, selected *models.Incident) {
	if c.onChange != nil {
		c.onChange(ctx, selected)
	}
}
