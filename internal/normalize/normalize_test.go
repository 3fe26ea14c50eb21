package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueConvertsTimeToString(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

	plain, err := Value(struct {
		Title     string    `json:"title"`
		CreatedAt time.Time `json:"createdAt"`
	}{Title: "Acme", CreatedAt: created})
	require.NoError(t, err)

	m, ok := plain.(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "Acme", m["title"])
	// The date must be a plain string, not a rich date value.
	assert.Equal(t, "2024-06-01T12:30:00Z", m["createdAt"])
}

func TestValueIdempotent(t *testing.T) {
	input := map[string]any{
		"title": "Acme",
		"views": 3,
		"tags":  []any{"tech", "tools"},
	}

	once, err := Value(input)
	require.NoError(t, err)

	twice, err := Value(once)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestMapRejectsNonObject(t *testing.T) {
	_, err := Map([]string{"a", "b"})
	assert.Error(t, err)
}

func TestMapNilInput(t *testing.T) {
	m, err := Map(nil)
	require.NoError(t, err)
	assert.Empty(t, m)
}
