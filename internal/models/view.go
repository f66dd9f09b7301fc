package models

// ListEntry представляет строку списка происшествий, подготовленную для рендеринга
type ListEntry struct {
	ID          string    `json:"id"`
	AlertType   AlertType `json:"alert_type"`
	Label       string    `json:"label"`
	Icon        string    `json:"icon"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

// NewListEntry собирает строку списка из происшествия
func NewListEntry(incident *Incident) ListEntry {
	return ListEntry{
		ID:          incident.ID,
		AlertType:   incident.AlertType,
		Label:       incident.AlertType.Label(),
		Icon:        incident.AlertType.Icon(),
		Title:       incident.Title,
		Description: incident.Description,
	}
}

// ViewSnapshot представляет текущее состояние представления сессии
type ViewSnapshot struct {
	Visible    []ListEntry `json:"visible"`
	CountLabel string      `json:"count_label"`
	SelectedID string      `json:"selected_id,omitempty"`
	DrawerOpen bool        `json:"drawer_open"`
	Seq        uint64      `json:"seq"`
}

// MarkerRef связывает происшествие с дескриптором маркера на карте клиента
type MarkerRef struct {
	Handle     string `json:"handle"`
	IncidentID string `json:"incident_id"`
	Position   LatLng `json:"position"`
	Icon       string `json:"icon"`
	Title      string `json:"title"`
}

// SessionBootstrap представляет стартовый пакет новой сессии: маркеры и начальное положение карты
type SessionBootstrap struct {
	SessionID     string          `json:"session_id"`
	Markers       []MarkerRef     `json:"markers"`
	FitBounds     *BoundingRegion `json:"fit_bounds,omitempty"`
	DefaultCenter LatLng          `json:"default_center"`
	DefaultZoom   int             `json:"default_zoom"`
}

// Stats представляет сводные показатели сервиса
type Stats struct {
	ActiveSessions  int `json:"active_sessions"`
	IncidentCount   int `json:"incident_count"`
	RejectedRecords int `json:"rejected_records"`
}
