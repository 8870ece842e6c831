package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords_UpsertOverwrites(t *testing.T) {
	recs := NewRecords()

	recs.Upsert("github", "a", "pw1")
	recs.Upsert("github", "b", "pw2")

	require.Equal(t, 1, recs.Len())

	cred, ok := recs.Get("github")
	require.True(t, ok)
	assert.Equal(t, "github", cred.Service)
	assert.Equal(t, "b", cred.Username)
	assert.Equal(t, "pw2", cred.Password)
}

func TestRecords_GetAbsent(t *testing.T) {
	recs := NewRecords()

	_, ok := recs.Get("nope")
	assert.False(t, ok)
}

func TestRecords_DeleteIdempotent(t *testing.T) {
	recs := NewRecords()
	recs.Upsert("github", "alice", "pw")

	assert.True(t, recs.Delete("github"))
	assert.Equal(t, 0, recs.Len())

	// Deleting an absent service reports false and changes nothing.
	assert.False(t, recs.Delete("github"))
	assert.False(t, recs.Delete("never-existed"))
	assert.Equal(t, 0, recs.Len())
}

func TestRecords_ListOmitsPasswords(t *testing.T) {
	recs := NewRecords()
	recs.Upsert("github", "alice", "Secr3t!")
	recs.Upsert("mail", "bob", "hunter2-very-unique")

	summaries := recs.List()
	require.Len(t, summaries, 2)

	var rendered strings.Builder
	for _, s := range summaries {
		rendered.WriteString(s.Service)
		rendered.WriteString(" ")
		rendered.WriteString(s.Username)
		rendered.WriteString("\n")
	}

	assert.NotContains(t, rendered.String(), "Secr3t!")
	assert.NotContains(t, rendered.String(), "hunter2-very-unique")
	assert.Contains(t, rendered.String(), "github alice")
}

func TestRecords_KeyMatchesServiceField(t *testing.T) {
	recs := NewRecords()
	recs.Upsert("github", "alice", "pw")

	cred, ok := recs.Get("github")
	require.True(t, ok)
	assert.Equal(t, "github", cred.Service)
}
