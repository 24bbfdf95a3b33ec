package searchindex

import (
	"time"

	"github.com/IBM/sarama"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Producer is the subset of sarama.SyncProducer the indexer uses.
	Producer interface {
		SendMessages(msgs []*sarama.ProducerMessage) error
		Close() error
	}
	Metrics interface {
		ObservePublish(documents int, err error, started time.Time)
	}
)
