package stream

import (
	"context"
	"fmt"
	"sync"

	"github.com/globalmatt/wavetraffic/internal/models"
	"github.com/globalmatt/wavetraffic/internal/service"
	"github.com/sirupsen/logrus"
)

// Broker доставляет команды рендеринга подписчикам сессий через буферизованные очереди.
// Очередь у сессии одна, читатель у очереди один; при переполнении вытесняется
// самая старая команда.
type Broker struct {
	mu     sync.RWMutex
	queues map[string]chan models.Directive
	buffer int
	logger *logrus.Logger

	dropMu  sync.Mutex
	dropped int
}

func NewBroker(buffer int, logger *logrus.Logger) *Broker {
	return &Broker{
		queues: make(map[string]chan models.Directive),
		buffer: buffer,
		logger: logger,
	}
}

// Register создаёт очередь команд для новой сессии; повторная регистрация ничего не меняет
func (b *Broker) Register(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.queues[sessionID]; ok {
		return
	}
	b.queues[sessionID] = make(chan models.Directive, b.buffer)
}

// Publish ставит команду в очередь сессии, не блокируясь: при переполнении вытесняется самая старая.
// Блокировка чтения удерживается на всё время отправки, чтобы очередь не закрылась под отправителем.
func (b *Broker) Publish(ctx context.Context, sessionID string, directive models.Directive) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	queue, ok := b.queues[sessionID]
	if !ok {
		return fmt.Errorf("stream: session %s: %w", sessionID, service.ErrStreamClosed)
	}

	for {
		select {
		case queue <- directive:
			return nil
		default:
		}
		select {
		case stale := <-queue:
			b.countDrop()
			b.logger.WithFields(logrus.Fields{
				"stream":     "broker",
				"session_id": sessionID,
				"directive":  stale.Type,
			}).Warn("Directive queue full, oldest directive dropped")
		default:
		}
	}
}

// Subscribe возвращает очередь команд сессии
func (b *Broker) Subscribe(sessionID string) (<-chan models.Directive, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	queue, ok := b.queues[sessionID]
	if !ok {
		return nil, fmt.Errorf("stream: session %s: %w", sessionID, service.ErrStreamClosed)
	}
	return queue, nil
}

// CloseSession закрывает очередь сессии; подписчик получает закрытие канала
func (b *Broker) CloseSession(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	queue, ok := b.queues[sessionID]
	if !ok {
		return
	}
	delete(b.queues, sessionID)
	close(queue)
}

// Dropped возвращает число вытесненных команд за время работы
func (b *Broker) Dropped() int {
	b.dropMu.Lock()
	defer b.dropMu.Unlock()
	return b.dropped
}

func (b *Broker) countDrop() {
	b.dropMu.Lock()
	b.dropped++
	b.dropMu.Unlock()
}
