package ingester

import "time"

const (
	defaultQueueCapacity = 10_000
	defaultWorkerCount   = 4

	archiveInitialInterval        = 200 * time.Millisecond
	archiveMaxInterval            = 5 * time.Second
	archiveMaxRetries      uint64 = 5

	outcomeIngested  = "ingested"
	outcomeDuplicate = "duplicate"
	outcomeError     = "error"
)
