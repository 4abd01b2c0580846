package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = []Question{
	{Name: "one", Year: 1900},
	{Name: "two", Year: 1950},
	{Name: "three", Year: 2000},
}

func TestSequencerCurrentDefaultsToFirst(t *testing.T) {
	seq := newSequencer(newMemoryStorage(), testCatalog)

	q, ok := seq.current()
	require.True(t, ok)
	assert.Equal(t, "one", q.Name)

	// Nothing cached until the game starts.
	_, ok = seq.cachedQuestion()
	assert.False(t, ok)
}

func TestSequencerResetCachesFirstQuestion(t *testing.T) {
	seq := newSequencer(newMemoryStorage(), testCatalog)

	q, ok := seq.reset()
	require.True(t, ok)
	assert.Equal(t, "one", q.Name)

	cached, ok := seq.cachedQuestion()
	require.True(t, ok)
	assert.Equal(t, "one", cached.Name)
}

func TestSequencerAdvancePersistsIndexAndCache(t *testing.T) {
	seq := newSequencer(newMemoryStorage(), testCatalog)
	seq.reset()

	q, ok := seq.advance()
	require.True(t, ok)
	assert.Equal(t, "two", q.Name)

	current, ok := seq.current()
	require.True(t, ok)
	assert.Equal(t, "two", current.Name)

	cached, ok := seq.cachedQuestion()
	require.True(t, ok)
	assert.Equal(t, "two", cached.Name)
}

func TestSequencerExhaustion(t *testing.T) {
	seq := newSequencer(newMemoryStorage(), testCatalog)
	seq.reset()

	for i := 0; i < len(testCatalog)-1; i++ {
		_, ok := seq.advance()
		require.True(t, ok)
	}

	_, ok := seq.advance()
	assert.False(t, ok)

	// Repeated advances stay exhausted instead of wrapping.
	_, ok = seq.advance()
	assert.False(t, ok)

	_, ok = seq.current()
	assert.False(t, ok)

	// The last question stays cached for straggler guesses.
	cached, ok := seq.cachedQuestion()
	require.True(t, ok)
	assert.Equal(t, "three", cached.Name)
}

func TestSequencerEmptyCatalog(t *testing.T) {
	seq := newSequencer(newMemoryStorage(), nil)

	_, ok := seq.current()
	assert.False(t, ok)

	_, ok = seq.reset()
	assert.False(t, ok)
}
