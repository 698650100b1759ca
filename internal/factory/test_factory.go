package factory

import (
	"context"
	"time"

	"github.com/mcoot/pokerledger/internal/dependencies/mocks"
	"github.com/mcoot/pokerledger/internal/storage/memory"
	"github.com/mcoot/pokerledger/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MemoryStore *memory.Storage
	MockClock   *mocks.MockClock
	MockRandom  *mocks.MockRandom
}

// NewTestApp creates an App on in-memory storage with mocked clock and randomness
func NewTestApp() *TestApp {
	return NewTestAppWithStore(memory.New())
}

// NewTestAppWithStore is NewTestApp over a store the test already holds,
// so a second app can reload what a first one saved
func NewTestAppWithStore(store *memory.Storage) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(context.Background(), store, mockClock, mockRandom, Config{}, testutil.NopLogger())

	return &TestApp{
		App:         app,
		MemoryStore: store,
		MockClock:   mockClock,
		MockRandom:  mockRandom,
	}
}
