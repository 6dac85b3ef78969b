package memory

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/minds/internal/entity"
)

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()

	require.Len(t, seed, 3)
	assert.Equal(t, []uint64{1, 2, 3}, ids(seed))
	for _, m := range seed {
		assert.Zero(t, m.PublishTime.Nanosecond())
	}
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	doc := `minds:
  - id: 5
    publish_time: 2024-01-02T03:04:05.750Z
    content: "普普通通"
  - id: 2
    publish_time: 2024-01-01T00:00:00+03:00
    content: ""
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	minds, err := LoadSeed(path)
	require.NoError(t, err)

	assert.Equal(t, []entity.Mind{
		{ID: 5, PublishTime: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), Content: "普普通通"},
		{ID: 2, PublishTime: time.Date(2023, 12, 31, 21, 0, 0, 0, time.UTC), Content: ""},
	}, minds)

	mind, err := New(WithSeed(minds)).Create(t.Context(), "next")
	require.NoError(t, err)
	assert.Equal(t, uint64(6), mind.ID)
}

func TestParseSeed_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "zero id", doc: "minds:\n  - id: 0\n    content: a\n"},
		{name: "duplicate id", doc: "minds:\n  - id: 1\n    content: a\n  - id: 1\n    content: b\n"},
		{name: "not yaml", doc: "minds: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
