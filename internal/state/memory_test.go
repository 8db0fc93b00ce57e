package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_InterfaceCompliance(_ *testing.T) {
	var _ Store = (*MemoryStore)(nil)
	var _ Store = (*FileStore)(nil)
}

func TestMemoryStore_MatchesFileStoreSemantics(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Append("demo", "default", 3))
	assert.ErrorIs(t, s.Append("demo", "default", 1), ErrDuplicateRecord)
	assert.Error(t, s.Append("demo", "other", 0))

	records, malformed, err := s.ReadAll("demo")
	require.NoError(t, err)
	assert.Empty(t, malformed)
	assert.Equal(t, map[string]int{"default": 3}, records)

	require.NoError(t, s.Clear("demo"))
	_, _, err = s.ReadAll("demo")
	assert.ErrorIs(t, err, ErrRecordSetNotFound)
	assert.NoError(t, s.Clear("demo"))
}

func TestMemoryStore_InjectedMalformedEntries(t *testing.T) {
	s := NewMemoryStore()
	s.Malformed = map[string][]string{"demo": {"poolX"}}

	require.True(t, s.HasRecordSet("demo"))
	records, malformed, err := s.ReadAll("demo")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, []string{"poolX"}, malformed)
}
