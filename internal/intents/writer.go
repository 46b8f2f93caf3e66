package intents

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
)

// WriterSink writes each intent as one JSON line. The replay command uses
// it in place of a live transport.
type WriterSink struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewWriterSink creates a sink writing to w
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{enc: json.NewEncoder(w)}
}

// Send writes the intent
func (s *WriterSink) Send(_ context.Context, intent Intent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enc.Encode(intent); err != nil {
		return errors.Wrapf(err, "failed to write %s intent", intent.Kind)
	}
	return nil
}

// Verify that WriterSink implements Sink
var _ Sink = (*WriterSink)(nil)
