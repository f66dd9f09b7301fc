package stream

import (
	"bytes"
	"context"
	"testing"

	"github.com/globalmatt/wavetraffic/internal/models"
	"github.com/globalmatt/wavetraffic/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBroker создает брокер с заданным размером очереди и тихим логгером
func newTestBroker(buffer int) *Broker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewBroker(buffer, logger)
}

func checkRow(seq uint64) models.Directive {
	return models.Directive{Type: models.DirectiveListCheckRow, IncidentID: "1", Seq: seq}
}

func TestBrokerPublish_DeliversInOrder(t *testing.T) {
	// Подготовка
	broker := newTestBroker(8)
	broker.Register("s1")
	ctx := context.Background()

	// Действие
	require.NoError(t, broker.Publish(ctx, "s1", checkRow(1)))
	require.NoError(t, broker.Publish(ctx, "s1", checkRow(2)))
	require.NoError(t, broker.Publish(ctx, "s1", checkRow(3)))

	// Проверки
	queue, err := broker.Subscribe("s1")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), (<-queue).Seq)
	assert.Equal(t, uint64(2), (<-queue).Seq)
	assert.Equal(t, uint64(3), (<-queue).Seq)
}

func TestBrokerPublish_UnknownSession(t *testing.T) {
	broker := newTestBroker(8)

	err := broker.Publish(context.Background(), "ghost", checkRow(1))

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrStreamClosed)
}

func TestBrokerPublish_DropsOldestWhenFull(t *testing.T) {
	// Подготовка: очередь на две команды
	broker := newTestBroker(2)
	broker.Register("s1")
	ctx := context.Background()

	// Действие: третья команда вытесняет самую старую
	require.NoError(t, broker.Publish(ctx, "s1", checkRow(1)))
	require.NoError(t, broker.Publish(ctx, "s1", checkRow(2)))
	require.NoError(t, broker.Publish(ctx, "s1", checkRow(3)))

	// Проверки
	assert.Equal(t, 1, broker.Dropped())

	queue, err := broker.Subscribe("s1")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), (<-queue).Seq)
	assert.Equal(t, uint64(3), (<-queue).Seq)
}

func TestBrokerRegister_Idempotent(t *testing.T) {
	broker := newTestBroker(8)
	broker.Register("s1")
	require.NoError(t, broker.Publish(context.Background(), "s1", checkRow(1)))

	// Повторная регистрация не сбрасывает очередь
	broker.Register("s1")

	queue, err := broker.Subscribe("s1")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), (<-queue).Seq)
}

func TestBrokerSubscribe_UnknownSession(t *testing.T) {
	broker := newTestBroker(8)

	queue, err := broker.Subscribe("ghost")

	require.Error(t, err)
	assert.Nil(t, queue)
	assert.ErrorIs(t, err, service.ErrStreamClosed)
}

func TestBrokerCloseSession_ClosesQueue(t *testing.T) {
	// Подготовка
	broker := newTestBroker(8)
	broker.Register("s1")
	require.NoError(t, broker.Publish(context.Background(), "s1", checkRow(1)))
	queue, err := broker.Subscribe("s1")
	require.NoError(t, err)

	// Действие
	broker.CloseSession("s1")

	// Проверки: оставшиеся команды дочитываются, затем канал закрыт
	directive, ok := <-queue
	assert.True(t, ok)
	assert.Equal(t, uint64(1), directive.Seq)

	_, ok = <-queue
	assert.False(t, ok)
}

func TestBrokerCloseSession_Unknown(t *testing.T) {
	broker := newTestBroker(8)

	// Закрытие несуществующей сессии не паникует
	broker.CloseSession("ghost")
}

func TestBrokerPublish_AfterClose(t *testing.T) {
	broker := newTestBroker(8)
	broker.Register("s1")
	broker.CloseSession("s1")

	err := broker.Publish(context.Background(), "s1", checkRow(1))

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrStreamClosed)
}

func TestBrokerSessions_Isolated(t *testing.T) {
	// Команды одной сессии не попадают в очередь другой
	broker := newTestBroker(8)
	broker.Register("s1")
	broker.Register("s2")
	ctx := context.Background()

	require.NoError(t, broker.Publish(ctx, "s1", checkRow(1)))
	require.NoError(t, broker.Publish(ctx, "s2", checkRow(2)))

	first, err := broker.Subscribe("s1")
	require.NoError(t, err)
	second, err := broker.Subscribe("s2")
	require.NoError(t, err)

	assert.Equal(t, uint64(1), (<-first).Seq)
	assert.Equal(t, uint64(2), (<-second).Seq)
	assert.Empty(t, first)
	assert.Empty(t, second)
}
