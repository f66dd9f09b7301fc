package models

// DirectiveType определяет вид команды, отправляемой виджетам браузера
type DirectiveType string

const (
	DirectiveListRender   DirectiveType = "list.render"
	DirectiveListCheckRow DirectiveType = "list.check_row"
	DirectiveListScrollTo DirectiveType = "list.scroll_to"
	DirectiveDetailOpen   DirectiveType = "detail.open"
	DirectiveDetailClose  DirectiveType = "detail.close"
	DirectiveMapPanTo     DirectiveType = "map.pan_to"
	DirectiveMapSetZoom   DirectiveType = "map.set_zoom"
	DirectiveDrawerSet    DirectiveType = "drawer.set"
)

// Directive представляет команду рендеринга для браузерной части; заполняются только поля своего типа
type Directive struct {
	Type        DirectiveType `json:"type"`
	Incidents   []ListEntry   `json:"incidents,omitempty"`
	CountLabel  string        `json:"count_label,omitempty"`
	IncidentID  string        `json:"incident_id,omitempty"`
	Anchor      string        `json:"anchor,omitempty"`
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	Label       string        `json:"label,omitempty"`
	Center      *LatLng       `json:"center,omitempty"`
	Zoom        int           `json:"zoom,omitempty"`
	Seq         uint64        `json:"seq,omitempty"`
	DrawerOpen  *bool         `json:"drawer_open,omitempty"`
}
