package idgen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/subnotes/internal/model"
	"github.com/rcliao/subnotes/internal/store"
)

func TestNextStartsAtOneAndPersists(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemStore()
	g, err := New(ctx, kv, nil)
	require.NoError(t, err)

	id, err := g.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ID("1"), id)

	raw, _, _ := kv.Get(ctx, store.KeyCounter)
	assert.Equal(t, "2", raw)

	id, _ = g.Next(ctx)
	assert.Equal(t, model.ID("2"), id)
	assert.Equal(t, model.ID("3"), g.Peek())
}

func TestNewResumesPersistedCounter(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemStore()
	require.NoError(t, kv.Set(ctx, store.KeyCounter, "42"))

	g, err := New(ctx, kv, nil)
	require.NoError(t, err)
	id, _ := g.Next(ctx)
	assert.Equal(t, model.ID("42"), id)
}

func TestNewIgnoresMalformedCounter(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-4", ""} {
		ctx := context.Background()
		kv := store.NewMemStore()
		require.NoError(t, kv.Set(ctx, store.KeyCounter, raw))

		g, err := New(ctx, kv, nil)
		require.NoError(t, err)
		assert.Equal(t, model.ID("1"), g.Peek(), "counter %q", raw)
	}
}

func TestNextDoesNotAdvanceOnWriteFailure(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemStore()
	g, err := New(ctx, kv, nil)
	require.NoError(t, err)

	kv.SetErr = errors.New("read-only")
	_, err = g.Next(ctx)
	assert.Error(t, err)
	assert.Equal(t, model.ID("1"), g.Peek())
}

func TestAdvancePastNeverDecrements(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemStore()
	require.NoError(t, kv.Set(ctx, store.KeyCounter, "10"))
	g, err := New(ctx, kv, nil)
	require.NoError(t, err)

	require.NoError(t, g.AdvancePast(ctx, []model.ID{"3", "x", "9"}))
	assert.Equal(t, model.ID("10"), g.Peek())

	require.NoError(t, g.AdvancePast(ctx, []model.ID{"3", "17"}))
	assert.Equal(t, model.ID("18"), g.Peek())
	raw, _, _ := kv.Get(ctx, store.KeyCounter)
	assert.Equal(t, "18", raw)
}
