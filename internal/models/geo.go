package models

import "math"

// LatLng представляет географическую точку в градусах WGS84
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid проверяет, что координаты точки находятся в допустимых пределах
func (p LatLng) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// BoundingRegion представляет прямоугольную область карты, заданную юго-западным и северо-восточным углами
type BoundingRegion struct {
	SouthWest LatLng `json:"south_west"`
	NorthEast LatLng `json:"north_east"`
}

// Valid проверяет, что углы области заданы корректно
func (r BoundingRegion) Valid() bool {
	if !r.SouthWest.Valid() || !r.NorthEast.Valid() {
		return false
	}
	return r.SouthWest.Lat <= r.NorthEast.Lat
}

// Contains сообщает, попадает ли точка внутрь области; границы считаются включительно.
// Если SouthWest.Lng > NorthEast.Lng, область пересекает антимеридиан и долгота проверяется с переносом.
func (r BoundingRegion) Contains(p LatLng) bool {
	if p.Lat < r.SouthWest.Lat || p.Lat > r.NorthEast.Lat {
		return false
	}
	if r.SouthWest.Lng <= r.NorthEast.Lng {
		return p.Lng >= r.SouthWest.Lng && p.Lng <= r.NorthEast.Lng
	}
	return p.Lng >= r.SouthWest.Lng || p.Lng <= r.NorthEast.Lng
}

// BoundsOf строит минимальную область, охватывающую все точки; false, если точек нет
func BoundsOf(points []LatLng) (BoundingRegion, bool) {
	if len(points) == 0 {
		return BoundingRegion{}, false
	}
	region := BoundingRegion{SouthWest: points[0], NorthEast: points[0]}
	for _, p := range points[1:] {
		if p.Lat < region.SouthWest.Lat {
			region.SouthWest.Lat = p.Lat
		}
		if p.Lat > region.NorthEast.Lat {
			region.NorthEast.Lat = p.Lat
		}
		if p.Lng < region.SouthWest.Lng {
			region.SouthWest.Lng = p.Lng
		}
		if p.Lng > region.NorthEast.Lng {
			region.NorthEast.Lng = p.Lng
		}
	}
	return region, true
}
