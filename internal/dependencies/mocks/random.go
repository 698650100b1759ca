package mocks

import (
	"strconv"
	"strings"

	"github.com/mcoot/pokerledger/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing.
// Queued strings are returned first; afterwards it counts upwards so
// generated ids stay unique even when a test queues nothing.
type MockRandom struct {
	StringResults []string
	stringIndex   int
	counter       int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// String returns the next queued result, or a zero-padded counter
func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex < len(r.StringResults) {
		result := r.StringResults[r.stringIndex]
		r.stringIndex++
		return result
	}
	r.counter++
	s := strconv.FormatInt(int64(r.counter), 36)
	if len(s) < length {
		s = strings.Repeat("0", length-len(s)) + s
	}
	return s
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}
