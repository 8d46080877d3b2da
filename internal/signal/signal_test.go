package signal

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSetUpHandlerReturnsActionError(t *testing.T) {
	want := errors.New("boom")
	err := SetUpHandler(context.Background(), &syncBuffer{}, func(context.Context) error {
		return want
	})
	assert.ErrorIs(t, err, want)
}

func TestSetUpHandlerCancelsOnSignal(t *testing.T) {
	var out syncBuffer
	err := SetUpHandler(context.Background(), &out, func(ctx context.Context) error {
		p, err := os.FindProcess(os.Getpid())
		require.NoError(t, err)
		require.NoError(t, p.Signal(syscall.SIGTERM))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return errors.New("context was not cancelled")
		}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, out.String(), "Goodbye!")
}
