package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glint/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	t.Run("standard error", func(t *testing.T) {
		entries := logger.CollectErrorEntries(errors.New("simple error"))
		require.Len(t, entries, 1)
		assert.Equal(t, "simple error", entries[0].Message)
		assert.Nil(t, entries[0].Metadata)
	})

	t.Run("wrapped chain", func(t *testing.T) {
		err := zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer")

		entries := logger.CollectErrorEntries(err)
		require.Len(t, entries, 3)
		assert.Equal(t, "outer layer", entries[0].Message)
		assert.Equal(t, "middle layer", entries[1].Message)
		assert.Equal(t, "root cause", entries[2].Message)
	})

	t.Run("metadata", func(t *testing.T) {
		err := zerr.With(zerr.New("stale arena handle"), "handle", "#3@7")

		entries := logger.CollectErrorEntries(err)
		require.Len(t, entries, 1)
		assert.Equal(t, "#3@7", entries[0].Metadata["handle"])
	})

	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, logger.CollectErrorEntries(nil))
	})
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "caused by",
			entries: []logger.ErrorEntry{{Message: "outer"}, {Message: "inner"}, {Message: "root"}},
			want:    "Error: outer\n\n  Caused by:\n    → inner\n    → root",
		},
		{
			name: "metadata sorted by key",
			entries: []logger.ErrorEntry{{
				Message:  "unknown type name",
				Metadata: map[string]any{"spec": "highp quat", "name": "quat"},
			}},
			want: "Error: unknown type name\n       name: quat\n       spec: highp quat",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "invalid prewarm entry"},
				{Message: "invalid dimension", Metadata: map[string]any{"dimension": 5}},
			},
			want: "Error: invalid prewarm entry\n\n  Caused by:\n    → invalid dimension\n      dimension: 5",
		},
		{
			name:    "multiline message",
			entries: []logger.ErrorEntry{{Message: "main"}, {Message: "line1\nline2"}},
			want:    "Error: main\n\n  Caused by:\n    → line1\n      line2",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
