package follower

import "time"

const (
	defaultBatchSize    uint64 = 16
	defaultWorkerCount         = 4
	defaultPollInterval        = 5 * time.Second
	errorSleepDuration         = 5 * time.Second
)
