package goroutine

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsummarizer/internal/shared/logger"
)

func TestSafeGo_RecoversPanic(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	SafeGo(logger.NewNopLogger(), "boom", func() {
		defer wg.Done()
		panic("boom")
	})
	wg.Wait()
}

func TestSafeGoErr(t *testing.T) {
	sentinel := errors.New("write failed")

	assert.NoError(t, <-SafeGoErr(logger.NewNopLogger(), "ok", func() error { return nil }))
	assert.ErrorIs(t, <-SafeGoErr(logger.NewNopLogger(), "fail", func() error { return sentinel }), sentinel)

	err := <-SafeGoErr(logger.NewNopLogger(), "panic", func() error { panic("kaboom") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
}
