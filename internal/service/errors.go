package service

import "errors"

// Сигнальные ошибки слоя сервисов; обработчики сопоставляют их через errors.Is
var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrIncidentNotFound = errors.New("incident not found")
	ErrInvalidRegion    = errors.New("invalid bounding region")
	ErrStreamClosed     = errors.New("directive stream closed")
)
