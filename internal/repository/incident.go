package repository

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/globalmatt/wavetraffic/internal/models"
	"github.com/globalmatt/wavetraffic/internal/service"
	"github.com/sirupsen/logrus"
)

// rawRecord описывает запись набора данных до валидации; id и координаты
// в исходном фиде приходят и числами, и строками
type rawRecord struct {
	ID          recordID    `json:"id"`
	AlertType   string      `json:"alert_type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Lat         json.Number `json:"lat"`
	Long        json.Number `json:"long"`
}

// recordID принимает идентификатор как число или произвольную строку;
// строка не обязана быть числовой
type recordID string

func (v *recordID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = recordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number")
	}
	*v = recordID(n.String())
	return nil
}

type IncidentStore struct {
	incidents []*models.Incident
	byID      map[string]*models.Incident
	bounds    models.BoundingRegion
	hasBounds bool
	rejected  int
}

// NewIncidentStore загружает набор происшествий из JSON-файла; порядок записей файла сохраняется
func NewIncidentStore(path string, log *logrus.Logger) (service.IncidentStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("repository: could not read dataset %s: %w", path, err)
	}

	var rawItems []json.RawMessage
	if err := json.Unmarshal(data, &rawItems); err != nil {
		return nil, fmt.Errorf("repository: could not parse dataset %s: %w", path, err)
	}

	store := &IncidentStore{
		incidents: make([]*models.Incident, 0, len(rawItems)),
		byID:      make(map[string]*models.Incident, len(rawItems)),
	}

	// Записи декодируются по одной: одна испорченная запись не роняет загрузку
	for i, raw := range rawItems {
		var record rawRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			store.rejected++
			log.WithFields(logrus.Fields{
				"repository": "incident_store",
				"record":     i,
				"reason":     err.Error(),
			}).Warn("dataset record rejected")
			continue
		}
		incident, reason := buildIncident(record)
		if incident == nil {
			store.rejected++
			log.WithFields(logrus.Fields{
				"repository": "incident_store",
				"record":     i,
				"reason":     reason,
			}).Warn("dataset record rejected")
			continue
		}
		if _, exists := store.byID[incident.ID]; exists {
			store.rejected++
			log.WithFields(logrus.Fields{
				"repository":  "incident_store",
				"record":      i,
				"incident_id": incident.ID,
				"reason":      "duplicate id",
			}).Warn("dataset record rejected")
			continue
		}
		if !knownAlertType(incident.AlertType) {
			log.WithFields(logrus.Fields{
				"repository":  "incident_store",
				"incident_id": incident.ID,
				"alert_type":  incident.AlertType,
			}).Warn("unknown alert type, generic icon will be used")
		}
		store.incidents = append(store.incidents, incident)
		store.byID[incident.ID] = incident
	}

	points := make([]models.LatLng, 0, len(store.incidents))
	for _, incident := range store.incidents {
		points = append(points, incident.Position())
	}
	store.bounds, store.hasBounds = models.BoundsOf(points)

	log.WithFields(logrus.Fields{
		"repository": "incident_store",
		"path":       path,
		"loaded":     len(store.incidents),
		"rejected":   store.rejected,
	}).Info("incident dataset loaded")

	return store, nil
}

// buildIncident валидирует сырую запись; при отбраковке возвращает nil и причину
func buildIncident(record rawRecord) (*models.Incident, string) {
	id := strings.TrimSpace(string(record.ID))
	if id == "" {
		return nil, "empty id"
	}

	lat, err := parseCoordinate(record.Lat)
	if err != nil {
		return nil, fmt.Sprintf("bad latitude: %v", err)
	}
	lng, err := parseCoordinate(record.Long)
	if err != nil {
		return nil, fmt.Sprintf("bad longitude: %v", err)
	}
	if !(models.LatLng{Lat: lat, Lng: lng}).Valid() {
		return nil, "coordinates out of range"
	}

	return &models.Incident{
		ID:          id,
		AlertType:   models.AlertType(strings.TrimSpace(record.AlertType)),
		Title:       strings.TrimSpace(record.Title),
		Description: record.Description,
		Latitude:    lat,
		Longitude:   lng,
	}, ""
}

func parseCoordinate(value json.Number) (float64, error) {
	s := strings.TrimSpace(value.String())
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("value is not finite")
	}
	return f, nil
}

func knownAlertType(t models.AlertType) bool {
	switch t {
	case models.AlertTowAllocation, models.AlertRoadworks, models.AlertEvent, models.AlertEmergency, models.AlertGeneric:
		return true
	}
	return false
}

// All возвращает все происшествия в порядке записей набора данных
func (s *IncidentStore) All() []*models.Incident {
	out := make([]*models.Incident, len(s.incidents))
	copy(out, s.incidents)
	return out
}

// Get возвращает происшествие по идентификатору
func (s *IncidentStore) Get(id string) (*models.Incident, bool) {
	incident, ok := s.byID[id]
	return incident, ok
}

// Bounds возвращает минимальную область, охватывающую все происшествия; false, если набор пуст
func (s *IncidentStore) Bounds() (models.BoundingRegion, bool) {
	return s.bounds, s.hasBounds
}

// Len возвращает число принятых происшествий
func (s *IncidentStore) Len() int {
	return len(s.incidents)
}

// Rejected возвращает число отброшенных при загрузке записей
func (s *IncidentStore) Rejected() int {
	return s.rejected
}
