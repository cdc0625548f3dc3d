package captcha

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solve(t *testing.T, question string) string {
	t.Helper()
	parts := strings.Fields(question)
	require.Len(t, parts, 3)
	a, err := strconv.Atoi(parts[0])
	require.NoError(t, err)
	b, err := strconv.Atoi(parts[2])
	require.NoError(t, err)
	if parts[1] == "+" {
		return strconv.Itoa(a + b)
	}
	return strconv.Itoa(a - b)
}

func TestStore_GenerateAndVerify(t *testing.T) {
	t.Parallel()
	store := NewStore(time.Minute)

	ch := store.Generate()
	assert.NotEmpty(t, ch.ID)
	assert.True(t, store.Verify(ch.ID, solve(t, ch.Question)))
}

func TestStore_ChallengeConsumedOnVerify(t *testing.T) {
	t.Parallel()
	store := NewStore(time.Minute)

	ch := store.Generate()
	answer := solve(t, ch.Question)
	require.True(t, store.Verify(ch.ID, answer))
	assert.False(t, store.Verify(ch.ID, answer), "challenge must be single-use")
}

func TestStore_WrongAnswerConsumesChallenge(t *testing.T) {
	t.Parallel()
	store := NewStore(time.Minute)

	ch := store.Generate()
	assert.False(t, store.Verify(ch.ID, "999"))
	assert.False(t, store.Verify(ch.ID, solve(t, ch.Question)), "no retry after a wrong guess")
}

func TestStore_UnknownIDRejected(t *testing.T) {
	t.Parallel()
	store := NewStore(time.Minute)

	assert.False(t, store.Verify("no-such-challenge", "1"))
}

func TestStore_ChallengeExpires(t *testing.T) {
	t.Parallel()
	store := NewStore(20 * time.Millisecond)

	ch := store.Generate()
	answer := solve(t, ch.Question)
	time.Sleep(60 * time.Millisecond)
	assert.False(t, store.Verify(ch.ID, answer))
}
