package kafka

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strconv"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

const (
	writeBatchSize    = 10
	writeBatchTimeout = 200 * time.Millisecond
	writeTimeout      = 10 * time.Second
)

// Producer публикует события заказов в топик Kafka. Балансировщик Hash по ключу (id заказа)
// отправляет события одного заказа в одну партицию.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	if !cfg.Enabled() {
		return nil, e.Wrap("KAFKA_BROKERS", e.ErrIncorrectEnvVariable)
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchSize:              writeBatchSize,
		BatchTimeout:           writeBatchTimeout,
		WriteTimeout:           writeTimeout,
		AllowAutoTopicCreation: false,
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// WriteRawMessage синхронно пишет одно сообщение. Ошибка значит, что событие не подтверждено брокером.
func (p *Producer) WriteRawMessage(ctx context.Context, req *usecase.WriteRawMessageReq) error {
	if err := p.writer.WriteMessages(ctx, toKafkaMessage(req)); err != nil {
		p.logger.Warnf("Kafka write failed, topic: %s, key: %s, error: %v", p.cfg.Topic, req.Key, err)
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func toKafkaMessage(req *usecase.WriteRawMessageReq) kafka.Message {
	msg := kafka.Message{
		Key:   []byte(req.Key),
		Value: req.Payload,
	}

	if len(req.Headers) == 0 {
		return msg
	}

	keys := make([]string, 0, len(req.Headers))
	for k := range req.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msg.Headers = make([]kafka.Header, 0, len(keys))
	for _, k := range keys {
		msg.Headers = append(msg.Headers, kafka.Header{Key: k, Value: []byte(req.Headers[k])})
	}

	return msg
}

// EnsureTopic создает топик через контроллер кластера, если его еще нет.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conn, err := kafka.DialContext(ctx, p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		p.logger.Debugf("Kafka topic %s already exists, partitions: %d", p.cfg.Topic, len(partitions))
		return nil
	}

	controller, err := conn.Controller()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	ctrlConn, err := kafka.DialContext(ctx, p.cfg.NetworkMode, net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer ctrlConn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = ctrlConn.SetDeadline(deadline)
	}

	if err := ctrlConn.CreateTopics(kafka.TopicConfig{
		Topic:             p.cfg.Topic,
		NumPartitions:     p.cfg.Partitions,
		ReplicationFactor: p.cfg.ReplicationFactor,
	}); err != nil {
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
	}

	p.logger.Infof("Kafka topic %s created, partitions: %d", p.cfg.Topic, p.cfg.Partitions)
	return nil
}

// Close дописывает буфер и закрывает writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
