// Package searchindex publishes stored transactions to a Kafka topic consumed by an
// external full-text indexer. Reads never go through it.
package searchindex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
	"github.com/goodnatureofminers/txvault-backend/pkg/batcher"
	"go.uber.org/zap"
)

// SinkName identifies the indexer among ingestion sinks.
const SinkName = "search_index"

const (
	flushSize     = 500
	flushInterval = time.Second
	flushesPerSec = 20
)

// Document is the message published for each transaction.
type Document struct {
	model.Transaction
	FullText string `json:"fullText"`
}

// Indexer batches transactions and publishes one message per transaction, keyed by hash.
type Indexer struct {
	logger   *zap.Logger
	producer Producer
	topic    string
	metrics  Metrics
	batcher  *batcher.Batcher[model.Transaction]
}

// NewProducer builds a synchronous producer that waits for all in-sync replicas.
func NewProducer(brokers []string) (sarama.SyncProducer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}

	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second
	config.Producer.Partitioner = sarama.NewHashPartitioner
	config.Version = sarama.V2_8_0_0

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return producer, nil
}

// New builds an Indexer publishing to topic.
func New(producer Producer, topic string, metrics Metrics, logger *zap.Logger) (*Indexer, error) {
	if producer == nil {
		return nil, errors.New("kafka producer is required")
	}
	if topic == "" {
		return nil, errors.New("search index topic is required")
	}
	if metrics == nil {
		return nil, errors.New("search index metrics is required")
	}

	idx := &Indexer{
		logger:   logger,
		producer: producer,
		topic:    topic,
		metrics:  metrics,
	}
	idx.batcher = batcher.New(logger.Named("batcher"), idx.publish, flushSize, flushInterval, flushesPerSec)
	return idx, nil
}

// Start begins periodic publishing.
func (i *Indexer) Start(ctx context.Context) {
	i.batcher.Start(ctx)
}

// Stop publishes what is still buffered and closes the producer.
func (i *Indexer) Stop() error {
	i.batcher.Stop()
	if err := i.producer.Close(); err != nil {
		return fmt.Errorf("close kafka producer: %w", err)
	}
	return nil
}

// Name implements the ingestion sink contract.
func (i *Indexer) Name() string {
	return SinkName
}

// Consume implements the ingestion sink contract by queueing tx for the next batch.
func (i *Indexer) Consume(ctx context.Context, tx model.Transaction) error {
	if err := i.batcher.Add(ctx, tx); err != nil {
		return fmt.Errorf("queue %s for indexing: %w", tx.Hash, err)
	}
	return nil
}

func (i *Indexer) publish(_ context.Context, txs []model.Transaction) (err error) {
	started := time.Now()
	defer func() {
		i.metrics.ObservePublish(len(txs), err, started)
	}()

	msgs := make([]*sarama.ProducerMessage, 0, len(txs))
	for _, tx := range txs {
		body, err := json.Marshal(Document{Transaction: tx, FullText: tx.FullText})
		if err != nil {
			return fmt.Errorf("encode %s: %w", tx.Hash, err)
		}
		msgs = append(msgs, &sarama.ProducerMessage{
			Topic: i.topic,
			Key:   sarama.StringEncoder(tx.Hash),
			Value: sarama.ByteEncoder(body),
		})
	}

	if err := i.producer.SendMessages(msgs); err != nil {
		return fmt.Errorf("publish %d documents to %s: %w", len(msgs), i.topic, err)
	}
	return nil
}
