package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/subnotes/internal/model"
)

func TestLoadForestDefaultsToEmpty(t *testing.T) {
	s := NewSnapshots(NewMemStore(), nil)
	forest, err := s.LoadForest(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, forest)
	assert.Empty(t, forest)
}

func TestLoadForestMalformedIsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemStore()
	require.NoError(t, kv.Set(ctx, KeyForest, `{not json`))

	forest, err := NewSnapshots(kv, nil).LoadForest(ctx)
	require.NoError(t, err)
	assert.Empty(t, forest)
}

func TestLoadForestLegacyNumericIDs(t *testing.T) {
	ctx := context.Background()
	kv := NewMemStore()
	require.NoError(t, kv.Set(ctx, KeyForest, `[{"id":1,"text":"alpha","childNotes":[{"id":2,"text":"beta"}]},null]`))

	forest, err := NewSnapshots(kv, nil).LoadForest(ctx)
	require.NoError(t, err)
	want := model.Forest{{ID: "1", Text: "alpha", ChildNotes: []*model.Note{{ID: "2", Text: "beta"}}}}
	assert.Equal(t, want, forest)
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	forest := model.Forest{
		{ID: "1", Text: "alpha", ChildNotes: []*model.Note{
			{ID: "2", Text: "beta", ChildNotes: []*model.Note{{ID: "3", Text: "gamma"}}},
		}},
		{ID: "4", Text: "delta"},
	}

	backends := map[string]KV{"memory": NewMemStore()}
	sq, err := NewSQLiteStore(filepath.Join(t.TempDir(), "snap.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sq.Close() })
	backends["sqlite"] = sq

	for name, kv := range backends {
		t.Run(name, func(t *testing.T) {
			s := NewSnapshots(kv, nil)
			require.NoError(t, s.SaveForest(ctx, forest))
			got, err := s.LoadForest(ctx)
			require.NoError(t, err)
			assert.Equal(t, forest, got)
			assert.NotEmpty(t, s.Revision(ctx))
		})
	}
}

func TestSaveNilForestWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	kv := NewMemStore()
	require.NoError(t, NewSnapshots(kv, nil).SaveForest(ctx, nil))

	raw, ok, _ := kv.Get(ctx, KeyForest)
	assert.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestSaveForestPropagatesStoreError(t *testing.T) {
	kv := NewMemStore()
	kv.SetErr = errors.New("disk full")
	err := NewSnapshots(kv, nil).SaveForest(context.Background(), model.Forest{})
	assert.ErrorIs(t, err, kv.SetErr)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	kv := NewMemStore()
	s := NewSnapshots(kv, nil)
	require.NoError(t, s.SaveForest(ctx, model.Forest{
		{ID: "1", Text: "alpha", ChildNotes: []*model.Note{{ID: "2", Text: "beta"}}},
		{ID: "3", Text: "gamma"},
	}))

	st, err := s.Stats(ctx, BackendMemory, "", "4")
	require.NoError(t, err)
	assert.Equal(t, 3, st.TotalNotes)
	assert.Equal(t, 2, st.TopLevel)
	assert.Equal(t, 2, st.MaxDepth)
	assert.Equal(t, model.ID("4"), st.NextID)
	assert.Equal(t, "1", st.Revision)
}
