package v1

import "github.com/globalmatt/wavetraffic/internal/models"

// DTOToRegionModel преобразует DTO окна просмотра в доменную область карты
func DTOToRegionModel(dto ViewportSettledRequest) models.BoundingRegion {
	return models.BoundingRegion{
		SouthWest: models.LatLng{Lat: dto.SouthWest.Lat, Lng: dto.SouthWest.Lng},
		NorthEast: models.LatLng{Lat: dto.NorthEast.Lat, Lng: dto.NorthEast.Lng},
	}
}

// ModelToLatLngDTO преобразует точку карты в DTO
func ModelToLatLngDTO(point models.LatLng) LatLngDTO {
	return LatLngDTO{Lat: point.Lat, Lng: point.Lng}
}

// ModelToRegionDTO преобразует область карты в DTO
func ModelToRegionDTO(region models.BoundingRegion) BoundingRegionDTO {
	return BoundingRegionDTO{
		SouthWest: ModelToLatLngDTO(region.SouthWest),
		NorthEast: ModelToLatLngDTO(region.NorthEast),
	}
}

// ModelToSessionResponse преобразует стартовый пакет сессии в DTO для ответа
func ModelToSessionResponse(bootstrap *models.SessionBootstrap) *SessionResponse {
	markers := make([]MarkerRefDTO, len(bootstrap.Markers))
	for i, marker := range bootstrap.Markers {
		markers[i] = MarkerRefDTO{
			Handle:     marker.Handle,
			IncidentID: marker.IncidentID,
			Position:   ModelToLatLngDTO(marker.Position),
			Icon:       marker.Icon,
			Title:      marker.Title,
		}
	}

	response := &SessionResponse{
		SessionID:     bootstrap.SessionID,
		Markers:       markers,
		DefaultCenter: ModelToLatLngDTO(bootstrap.DefaultCenter),
		DefaultZoom:   bootstrap.DefaultZoom,
	}
	if bootstrap.FitBounds != nil {
		bounds := ModelToRegionDTO(*bootstrap.FitBounds)
		response.FitBounds = &bounds
	}
	return response
}

// ModelToViewResponse преобразует снимок представления в DTO для ответа
func ModelToViewResponse(snapshot *models.ViewSnapshot) *ViewResponse {
	visible := make([]ListEntryDTO, len(snapshot.Visible))
	for i, entry := range snapshot.Visible {
		visible[i] = ListEntryDTO{
			ID:          entry.ID,
			AlertType:   string(entry.AlertType),
			Label:       entry.Label,
			Icon:        entry.Icon,
			Title:       entry.Title,
			Description: entry.Description,
		}
	}

	return &ViewResponse{
		Visible:    visible,
		CountLabel: snapshot.CountLabel,
		SelectedID: snapshot.SelectedID,
		DrawerOpen: snapshot.DrawerOpen,
		Seq:        snapshot.Seq,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		AlertType:   string(model.AlertType),
		Label:       model.AlertType.Label(),
		Icon:        model.AlertType.Icon(),
		Title:       model.Title,
		Description: model.Description,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToStatsResponse преобразует сводные показатели в DTO для ответа
func ModelToStatsResponse(stats *models.Stats) *StatsResponse {
	return &StatsResponse{
		ActiveSessions:  stats.ActiveSessions,
		IncidentCount:   stats.IncidentCount,
		RejectedRecords: stats.RejectedRecords,
	}
}
