package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// AlertType определяет категорию дорожного происшествия
type AlertType string

const (
	AlertTowAllocation AlertType = "tow_allocation"
	AlertRoadworks     AlertType = "roadworks"
	AlertEvent         AlertType = "event"
	AlertEmergency     AlertType = "emergency"
	AlertGeneric       AlertType = "alert"
)

// метки, которые нельзя получить простой капитализацией тега
var irregularLabels = map[AlertType]string{
	AlertTowAllocation: "Tow Allocation",
}

// Label возвращает человекочитаемое название категории для списка и карточки
func (t AlertType) Label() string {
	if label, ok := irregularLabels[t]; ok {
		return label
	}
	s := string(t)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Icon возвращает имя файла значка категории; неизвестные категории получают общий значок
func (t AlertType) Icon() string {
	switch t {
	case AlertTowAllocation, AlertRoadworks, AlertEvent, AlertEmergency, AlertGeneric:
		return "icon-" + strings.ReplaceAll(string(t), "_", "-") + ".png"
	default:
		return "icon-" + string(AlertGeneric) + ".png"
	}
}

// Incident представляет дорожное происшествие, отображаемое на карте
type Incident struct {
	ID          string    `json:"id"`
	AlertType   AlertType `json:"alert_type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
}

// Position возвращает координаты происшествия как точку карты
func (i *Incident) Position() LatLng {
	return LatLng{Lat: i.Latitude, Lng: i.Longitude}
}
