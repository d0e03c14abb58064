package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Off(t *testing.T) {
	s := NewScheduler(func() {}, zerolog.Nop())
	for _, spec := range []string{"", "off", " OFF "} {
		ok, err := s.Register(spec)
		require.NoError(t, err)
		assert.False(t, ok, spec)
	}
	assert.Empty(t, s.Cron.Entries())
}

func TestRegister_InvalidSpec(t *testing.T) {
	s := NewScheduler(func() {}, zerolog.Nop())
	_, err := s.Register("every few seconds")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register refresh task")
}

func TestRegister_ReplacesPreviousEntry(t *testing.T) {
	s := NewScheduler(func() {}, zerolog.Nop())
	ok, err := s.Register("@every 30s")
	require.NoError(t, err)
	require.True(t, ok)
	_, err = s.Register("@every 1m")
	require.NoError(t, err)
	assert.Len(t, s.Cron.Entries(), 1)
}

func TestRunNow(t *testing.T) {
	var calls atomic.Int32
	s := NewScheduler(func() { calls.Add(1) }, zerolog.Nop())
	s.RunNow()
	s.RunNow()
	assert.Equal(t, int32(2), calls.Load())
}

func TestStartFiresRefresh(t *testing.T) {
	var calls atomic.Int32
	s := NewScheduler(func() { calls.Add(1) }, zerolog.Nop())
	_, err := s.Register("@every 1s")
	require.NoError(t, err)

	s.Start()
	defer s.Stop()
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}

func TestStopIdempotent(t *testing.T) {
	s := NewScheduler(func() {}, zerolog.Nop())
	s.Stop()
	s.Start()
	s.Stop()
	s.Stop()
}
