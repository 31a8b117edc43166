package pipeline

import (
	"context"
	"time"
)

// RawMessage is an unprocessed sounding message from the source topic. The
// value is the collector's JSON level list; the key identifies the station
// and launch time and is passed through to the sink unchanged.
type RawMessage struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// OutputMessage is a serialized analysis record destined for the sink topic.
type OutputMessage struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
