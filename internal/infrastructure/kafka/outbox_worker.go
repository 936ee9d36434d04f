package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/jitter"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jackc/pgx/v5"
)

const outboxChannel = "outbox_pending"

// OutboxStore: хранилище событий, которое разбирает воркер.
type OutboxStore interface {
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
	// RequeueStale возвращает в pending события, зависшие в processing.
	RequeueStale(ctx context.Context, olderThanSeconds int) (int64, error)
}

type OutboxWorkerOpts struct {
	// DSN для LISTEN outbox_pending. Пустая строка: только периодический опрос.
	DBConnStr    string
	BatchSize    int
	PollInterval time.Duration
	StaleAfter   time.Duration
}

// OutboxWorker публикует события из outbox в Kafka.
type OutboxWorker struct {
	repo     OutboxStore
	logger   logger.Logger
	producer usecase.MessageProducer
	opts     OutboxWorkerOpts
	wake     chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewOutboxWorker(
	repo OutboxStore,
	logger logger.Logger,
	producer usecase.MessageProducer,
	opts OutboxWorkerOpts,
) *OutboxWorker {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 10
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 30 * time.Second
	}
	if opts.StaleAfter <= 0 {
		opts.StaleAfter = 5 * time.Minute
	}

	return &OutboxWorker{
		repo:     repo,
		logger:   logger,
		producer: producer,
		opts:     opts,
		wake:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
	}
}

func (w *OutboxWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()

	if w.opts.DBConnStr == "" {
		return
	}

	// Слушатель уведомлений Postgres
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.listenOutboxNotifications(ctx)
	}()
}

// Stop останавливает воркер и ждет завершения горутин. Повторный вызов безопасен.
func (w *OutboxWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	w.wg.Wait()
}

// Close: Stop в форме для closer.
func (w *OutboxWorker) Close(_ context.Context) error {
	w.Stop()
	return nil
}

// Notify будит воркер вне очереди.
func (w *OutboxWorker) Notify() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *OutboxWorker) run(ctx context.Context) {
	// Обрабатываем "остатки" при старте
	w.logger.Infof("Draining pending outbox events on startup...")
	w.drain(ctx)

	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Infof("Outbox worker stopped by context cancellation")
			return
		case <-w.stop:
			w.logger.Infof("Outbox worker stopped")
			return
		case <-w.wake:
			w.drain(ctx)
		case <-ticker.C:
			w.requeueStale(ctx)
			w.drain(ctx)
		}
	}
}

func (w *OutboxWorker) drain(ctx context.Context) {
	for {
		hasMore, err := w.processBatch(ctx)
		if err != nil {
			w.logger.Warnf("Outbox batch processing failed: %v", err)
			return
		}
		if !hasMore {
			return
		}
	}
}

func (w *OutboxWorker) requeueStale(ctx context.Context) {
	n, err := w.repo.RequeueStale(ctx, int(w.opts.StaleAfter.Seconds()))
	if err != nil {
		w.logger.Warnf("Requeue stale outbox events failed: %v", err)
		return
	}
	if n > 0 {
		w.logger.Infof("Requeued %d stale outbox events", n)
	}
}

// processBatch возвращает true, если пачка была полной и стоит забрать следующую.
func (w *OutboxWorker) processBatch(ctx context.Context) (bool, error) {
	events, err := w.repo.GetAndMarkAsProcessing(ctx, w.opts.BatchSize)
	if err != nil {
		return false, err
	}

	for _, event := range events {
		if err := w.processEvent(ctx, event); err != nil {
			w.logger.Warnf("Publish outbox event failed, event_id: %s, error: %v", event.EventID, err)
			continue
		}
		if err := w.repo.MarkAsProcessed(ctx, event.ID); err != nil {
			w.logger.Warnf("Mark processed failed: %v", err)
		}
	}

	return len(events) == w.opts.BatchSize, nil
}

func (w *OutboxWorker) processEvent(ctx context.Context, event *usecase.OutboxEvent) error {
	if err := w.producer.WriteRawMessage(ctx, usecase.NewEventMessageReq(event)); err != nil {
		if isRetryableError(err) {
			return e.Wrap("temporary Kafka failure, will retry", err)
		}
		return e.Wrap("permanent Kafka failure", err)
	}

	return nil
}

func (w *OutboxWorker) listenOutboxNotifications(ctx context.Context) {
	backoff := jitter.Backoff{Base: time.Second, Max: 30 * time.Second}

	for {
		conn, err := w.connect(ctx)
		if err != nil {
			delay := backoff.Next()
			w.logger.Warnf("LISTEN connect failed (attempt %d), retry in %s: %v", backoff.Attempt(), delay, err)
			if !w.sleep(ctx, delay) {
				return
			}
			continue
		}

		backoff.Reset()
		err = w.waitNotifications(ctx, conn)
		_ = conn.Close(context.Background())
		if err == nil {
			return
		}

		w.logger.Warnf("LISTEN connection lost: %v. Reconnecting...", err)
		if !w.sleep(ctx, backoff.Next()) {
			return
		}
	}
}

func (w *OutboxWorker) connect(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, w.opts.DBConnStr)
	if err != nil {
		return nil, e.Wrap("failed to connect for LISTEN", err)
	}

	if _, err = conn.Exec(ctx, "LISTEN "+outboxChannel); err != nil {
		_ = conn.Close(ctx)
		return nil, e.Wrap("failed to LISTEN", err)
	}

	w.logger.Infof("Subscribed to '%s' channel", outboxChannel)
	return conn, nil
}

// waitNotifications возвращает nil при остановке и ошибку при потере соединения.
func (w *OutboxWorker) waitNotifications(ctx context.Context, conn *pgx.Conn) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.stop:
			return nil
		default:
		}

		waitCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		notif, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				continue
			}
			return err
		}

		if notif != nil && notif.Channel == outboxChannel {
			w.logger.Debugf("Received outbox notification")
			w.Notify()
		}
	}
}

func (w *OutboxWorker) sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	case <-w.stop:
		return false
	}
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"connection reset",
		"broken pipe",
		"no such host",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}
	return false
}
