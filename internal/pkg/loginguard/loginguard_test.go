package loginguard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGuard_LocksAfterMaxFailures(t *testing.T) {
	t.Parallel()
	guard := New(3, time.Minute)

	assert.True(t, guard.Allowed("ana@produtora.com|10.0.0.1"))
	for i := 0; i < 3; i++ {
		guard.RecordFailure("ana@produtora.com|10.0.0.1")
	}
	assert.False(t, guard.Allowed("ana@produtora.com|10.0.0.1"))

	// Other identities are unaffected.
	assert.True(t, guard.Allowed("bruno@produtora.com|10.0.0.1"))
}

func TestGuard_ResetUnlocks(t *testing.T) {
	t.Parallel()
	guard := New(2, time.Minute)

	guard.RecordFailure("u")
	guard.RecordFailure("u")
	assert.False(t, guard.Allowed("u"))

	guard.Reset("u")
	assert.True(t, guard.Allowed("u"))
}

func TestGuard_WindowExpires(t *testing.T) {
	t.Parallel()
	guard := New(1, 20*time.Millisecond)

	guard.RecordFailure("u")
	assert.False(t, guard.Allowed("u"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, guard.Allowed("u"))
}
