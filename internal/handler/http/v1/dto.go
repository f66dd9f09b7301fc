package v1

// LatLngDTO координаты точки в градусах
// @Description Координаты точки в градусах
type LatLngDTO struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// BoundingRegionDTO прямоугольная область карты
// @Description Прямоугольная область карты, заданная углами
type BoundingRegionDTO struct {
	SouthWest LatLngDTO `json:"south_west"`
	NorthEast LatLngDTO `json:"north_east"`
}

// ViewportSettledRequest DTO события остановки карты
// @Description DTO события остановки карты после перемещения или масштабирования
type ViewportSettledRequest struct {
	SouthWest LatLngDTO `json:"south_west"`
	NorthEast LatLngDTO `json:"north_east"`
	Zoom      int       `json:"zoom" validate:"min=0,max=22"`
}

// IncidentClickRequest DTO щелчка по маркеру или строке списка
// @Description DTO щелчка по маркеру или строке списка
type IncidentClickRequest struct {
	IncidentID string `json:"incident_id" validate:"required"`
}

// RowVisibilityRequest DTO отчёта о видимости отмеченной строки списка
// @Description DTO отчёта браузера о видимости отмеченной строки списка
type RowVisibilityRequest struct {
	IncidentID   string `json:"incident_id" validate:"required"`
	Seq          uint64 `json:"seq" validate:"required,min=1"`
	FullyVisible bool   `json:"fully_visible"`
}

// MarkerRefDTO описание маркера для карты клиента
// @Description Описание маркера: дескриптор, происшествие, позиция и значок
type MarkerRefDTO struct {
	Handle     string    `json:"handle"`
	IncidentID string    `json:"incident_id"`
	Position   LatLngDTO `json:"position"`
	Icon       string    `json:"icon"`
	Title      string    `json:"title"`
}

// SessionResponse DTO стартового пакета новой сессии
// @Description DTO стартового пакета: идентификатор сессии, маркеры и начальное положение карты
type SessionResponse struct {
	SessionID     string             `json:"session_id"`
	Markers       []MarkerRefDTO     `json:"markers"`
	FitBounds     *BoundingRegionDTO `json:"fit_bounds,omitempty"`
	DefaultCenter LatLngDTO          `json:"default_center"`
	DefaultZoom   int                `json:"default_zoom"`
}

// ListEntryDTO строка списка происшествий
// @Description Строка списка происшествий, подготовленная для рендеринга
type ListEntryDTO struct {
	ID          string `json:"id"`
	AlertType   string `json:"alert_type"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ViewResponse DTO снимка представления сессии
// @Description DTO текущего состояния представления сессии
type ViewResponse struct {
	Visible    []ListEntryDTO `json:"visible"`
	CountLabel string         `json:"count_label"`
	SelectedID string         `json:"selected_id,omitempty"`
	DrawerOpen bool           `json:"drawer_open"`
	Seq        uint64         `json:"seq"`
}

// DrawerStateResponse DTO состояния мобильной шторки списка
// @Description DTO состояния мобильной шторки списка
type DrawerStateResponse struct {
	DrawerOpen bool `json:"drawer_open"`
}

// IncidentResponse DTO для ответа с информацией о происшествии
// @Description DTO для ответа с информацией о происшествии
type IncidentResponse struct {
	ID          string  `json:"id"`
	AlertType   string  `json:"alert_type"`
	Label       string  `json:"label"`
	Icon        string  `json:"icon"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// StatsResponse DTO для ответа со сводными показателями
// @Description DTO для ответа со сводными показателями сервиса
type StatsResponse struct {
	ActiveSessions  int `json:"active_sessions"`
	IncidentCount   int `json:"incident_count"`
	RejectedRecords int `json:"rejected_records"`
}
