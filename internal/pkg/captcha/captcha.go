// Package captcha issues small arithmetic challenges for the login form.
// Challenges live in a TTL cache owned by the Store; expiry is handled by the
// cache itself, no sweep goroutine.
package captcha

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const maxPending = 4096

type Challenge struct {
	ID       string
	Question string
}

type Store struct {
	cache *expirable.LRU[string, int]
}

// NewStore creates a challenge store whose entries expire after ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		cache: expirable.NewLRU[string, int](maxPending, nil, ttl),
	}
}

// Generate creates a new challenge like "7 + 4" and returns its id and
// question. The answer stays server-side.
func (s *Store) Generate() Challenge {
	a := rand.Intn(10) + 1
	b := rand.Intn(10) + 1

	var question string
	var answer int
	if rand.Intn(2) == 0 || a <= b {
		question = fmt.Sprintf("%d + %d", a, b)
		answer = a + b
	} else {
		question = fmt.Sprintf("%d - %d", a, b)
		answer = a - b
	}

	id := uuid.NewString()
	s.cache.Add(id, answer)
	return Challenge{ID: id, Question: question}
}

// Verify checks the answer for a challenge id and consumes the challenge
// either way: one guess per challenge.
func (s *Store) Verify(id, answer string) bool {
	expected, ok := s.cache.Get(id)
	if !ok {
		return false
	}
	s.cache.Remove(id)
	return strings.TrimSpace(answer) == fmt.Sprintf("%d", expected)
}
