package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"webshop-backend/internal/kafka"
	"webshop-backend/internal/metrics"
)

// AuditManager aggregates audit entries into batches and hands them to a pool
// of workers that publish them through the configured producer.
type AuditManager struct {
	workerCount int
	batchSize   int
	timeout     time.Duration

	producer kafka.Producer
	logger   *zap.Logger

	inputChan  chan AuditLogEntry
	batchChan  chan []AuditLogEntry
	shutdownCh chan struct{}
	once       sync.Once
	wg         sync.WaitGroup
}

func NewAuditManager(workerCount, batchSize int, timeout time.Duration,
	producer kafka.Producer, logger *zap.Logger) *AuditManager {
	return &AuditManager{
		workerCount: workerCount,
		batchSize:   batchSize,
		timeout:     timeout,
		producer:    producer,
		logger:      logger,
		inputChan:   make(chan AuditLogEntry, workerCount*batchSize*2),
		batchChan:   make(chan []AuditLogEntry, workerCount*2),
		shutdownCh:  make(chan struct{}),
	}
}

func (m *AuditManager) Start(ctx context.Context) {
	m.wg.Add(1)
	go m.runAggregator(ctx)

	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.runWorker(ctx, i)
	}
}

func (m *AuditManager) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		close(m.shutdownCh)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			m.logger.Info("audit manager shutdown completed")
		case <-ctx.Done():
			m.logger.Warn("audit manager shutdown interrupted")
		}

		if err := m.producer.Close(); err != nil {
			m.logger.Error("failed to close audit producer", zap.Error(err))
		}
	})
}

// LogEntry queues an entry without blocking the request path. Entries are
// dropped (and counted) when the pipeline is saturated.
func (m *AuditManager) LogEntry(ctx context.Context, entry AuditLogEntry) {
	select {
	case m.inputChan <- entry:
	case <-ctx.Done():
		m.dropEntries(1)
	default:
		m.dropEntries(1)
	}
}

func (m *AuditManager) runAggregator(ctx context.Context) {
	defer m.wg.Done()

	var (
		batch    []AuditLogEntry
		timer    *time.Timer
		timeoutC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
		if len(batch) > 0 {
			m.dispatchBatch(batch)
		}
		close(m.batchChan)
	}()

	for {
		select {
		case entry := <-m.inputChan:
			batch = append(batch, entry)
			if len(batch) >= m.batchSize {
				m.dispatchBatch(batch)
				batch = nil
				timeoutC = nil
			} else if len(batch) == 1 {
				timer = time.NewTimer(m.timeout)
				timeoutC = timer.C
			}

		case <-timeoutC:
			m.dispatchBatch(batch)
			batch = nil
			timeoutC = nil

		case <-ctx.Done():
			return

		case <-m.shutdownCh:
			return
		}
	}
}

func (m *AuditManager) dispatchBatch(batch []AuditLogEntry) {
	batchCopy := make([]AuditLogEntry, len(batch))
	copy(batchCopy, batch)

	select {
	case m.batchChan <- batchCopy:
	default:
		m.dropEntries(len(batchCopy))
	}
}

func (m *AuditManager) runWorker(ctx context.Context, id int) {
	defer m.wg.Done()

	for batch := range m.batchChan {
		m.publishBatch(ctx, id, batch)
	}
}

func (m *AuditManager) publishBatch(ctx context.Context, workerID int, batch []AuditLogEntry) {
	for _, entry := range batch {
		value, err := json.Marshal(entry)
		if err != nil {
			m.logger.Error("failed to marshal audit entry",
				zap.Int("worker", workerID), zap.Error(err))
			m.dropEntries(1)
			continue
		}

		if err := m.producer.SendMessage(ctx, []byte(entry.ID.String()), value); err != nil {
			m.logger.Error("failed to publish audit entry",
				zap.Int("worker", workerID),
				zap.String("entry_id", entry.ID.String()),
				zap.Error(err))
			m.dropEntries(1)
		}
	}
}

func (m *AuditManager) dropEntries(n int) {
	metrics.AuditEntriesDroppedTotal.Add(float64(n))
}
