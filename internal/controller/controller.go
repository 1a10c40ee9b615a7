// Package controller turns user gestures into note tree mutations, persists
// the result and re-renders the view.
package controller

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rcliao/subnotes/internal/debounce"
	"github.com/rcliao/subnotes/internal/idgen"
	"github.com/rcliao/subnotes/internal/model"
	"github.com/rcliao/subnotes/internal/session"
	"github.com/rcliao/subnotes/internal/store"
	"github.com/rcliao/subnotes/internal/tree"
	"github.com/rcliao/subnotes/internal/view"
)

// DefaultSearchDelay is the quiet period before a search gesture runs.
const DefaultSearchDelay = 800 * time.Millisecond

// Options configures a Controller.
type Options struct {
	SearchDelay time.Duration
	Logger      logrus.FieldLogger
}

// Controller owns the in-memory forest and session state. Every handler
// runs to completion under mu, so the forest has a single writer.
//
// A mutation is applied to a copy of the forest. The copy is persisted and
// only then replaces the in-memory forest and gets rendered, so the store,
// memory and view never disagree after a handler returns.
type Controller struct {
	mu     sync.Mutex
	forest model.Forest
	state  session.State

	snaps  *store.Snapshots
	ids    *idgen.Generator
	sink   view.Sink
	search *debounce.Debouncer
	log    logrus.FieldLogger
}

// New loads the persisted forest and id counter. Nothing is rendered until
// Start is called.
func New(ctx context.Context, snaps *store.Snapshots, sink view.Sink, opts Options) (*Controller, error) {
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	if sink == nil {
		sink = view.NopSink{}
	}
	delay := opts.SearchDelay
	if delay <= 0 {
		delay = DefaultSearchDelay
	}

	forest, err := snaps.LoadForest(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := idgen.New(ctx, snaps.KV(), log)
	if err != nil {
		return nil, err
	}

	return &Controller{
		forest: forest,
		snaps:  snaps,
		ids:    ids,
		sink:   sink,
		search: debounce.New(delay),
		log:    log,
	}, nil
}

// SetSink swaps the render target. Used by sinks that need the controller
// before they can exist.
func (c *Controller) SetSink(sink view.Sink) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if sink == nil {
		sink = view.NopSink{}
	}
	c.sink = sink
}

// Start renders the loaded forest.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderLocked()
}

// Close drops any pending search.
func (c *Controller) Close() {
	if c.search.Pending() {
		c.log.Debug("dropping pending search")
	}
	c.search.Stop()
}

// Create adds a note with text under the current target, or at the top
// level when there is none. Text outside the allowed length is ignored
// without an error and without consuming an id. The returned id is None
// when nothing was inserted.
func (c *Controller) Create(ctx context.Context, text string) (model.ID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.createLocked(ctx, c.state.TargetParentID, text)
}

// CreateUnder creates the note under parentID in a single gesture. The
// current target is ignored and cleared like any other create.
func (c *Controller) CreateUnder(ctx context.Context, parentID model.ID, text string) (model.ID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.createLocked(ctx, parentID, text)
}

func (c *Controller) createLocked(ctx context.Context, parent model.ID, text string) (model.ID, error) {
	if !model.ValidateText(text) {
		c.log.WithField("length", len(strings.TrimSpace(text))).Debug("ignoring note with invalid text length")
		return model.None, nil
	}

	id, err := c.ids.Next(ctx)
	if err != nil {
		return model.None, err
	}
	next := c.forest.Clone()
	inserted := tree.InsertChild(&next, parent, &model.Note{ID: id, Text: text})

	st := c.state
	st.ClearTarget()
	if err := c.commit(ctx, next, st); err != nil {
		return model.None, err
	}

	fields := logrus.Fields{"id": id, "parent": parent}
	if !inserted {
		c.log.WithFields(fields).Debug("target note no longer exists, note dropped")
		return model.None, nil
	}
	c.log.WithFields(fields).Debug("note created")
	return id, nil
}

// Delete removes the note and its subtree. Missing ids are a no-op.
// The add-child target is always cleared, and edit mode ends when the
// edited note was removed.
func (c *Controller) Delete(ctx context.Context, id model.ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.forest.Clone()
	removed := tree.Delete(&next, id)

	st := c.state
	st.ClearTarget()
	if editID, ok := st.Editing(); ok && removed && tree.Find(next, editID) == nil {
		st.EndEdit()
	}
	if err := c.commit(ctx, next, st); err != nil {
		return err
	}
	c.log.WithFields(logrus.Fields{"id": id, "removed": removed}).Debug("note deleted")
	return nil
}

// ToggleTarget selects or deselects id as the add-child target and
// re-renders. Nothing is persisted.
func (c *Controller) ToggleTarget(id model.ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.ToggleTarget(id)
	return c.renderLocked()
}

// BeginEdit opens id for inline editing.
func (c *Controller) BeginEdit(ctx context.Context, id model.ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.state
	st.BeginEdit(id)
	return c.commit(ctx, c.forest.Clone(), st)
}

// CancelEdit leaves edit mode without changing the note.
func (c *Controller) CancelEdit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.EndEdit()
	return c.renderLocked()
}

// ConfirmEdit replaces the text of id. Edit mode ends whenever the note is
// found; the add-child target is always cleared. Text is not length-checked.
func (c *Controller) ConfirmEdit(ctx context.Context, id model.ID, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.forest.Clone()
	st := c.state
	st.ClearTarget()
	edited := tree.EditText(next, id, text)
	if edited {
		st.EndEdit()
	}
	if err := c.commit(ctx, next, st); err != nil {
		return err
	}
	c.log.WithFields(logrus.Fields{"id": id, "edited": edited}).Debug("note edited")
	return nil
}

// Search schedules a search for query once typing has paused. Only the last
// query in a burst runs.
func (c *Controller) Search(query string) {
	c.search.Call(func() {
		if err := c.SearchNow(context.Background(), query); err != nil {
			c.log.WithError(err).WithField("query", query).Warn("search failed")
		}
	})
}

// FlushSearch runs a pending debounced search immediately.
func (c *Controller) FlushSearch() {
	c.search.Flush()
}

// SearchNow renders the notes whose text equals query exactly, reading the
// forest back from the store. A blank query renders the whole forest.
func (c *Controller) SearchNow(ctx context.Context, query string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.ClearTarget()
	forest, err := c.snaps.LoadForest(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(query) == "" {
		return c.sink.Replace(view.Build(forest, c.state))
	}
	hits := tree.Search(forest, query)
	c.log.WithFields(logrus.Fields{"query": query, "hits": len(hits)}).Debug("search")
	return c.sink.Replace(view.BuildHits(query, hits, c.state))
}

// Find returns a copy of the note with id, or nil.
func (c *Controller) Find(id model.ID) *model.Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	return tree.Find(c.forest, id).Clone()
}

// Hits returns the exact-match search records without rendering.
func (c *Controller) Hits(query string) []model.SearchHit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return tree.Search(c.forest, query)
}

// Import replaces the whole forest. Ids must be unique and non-empty; the
// id counter is moved past every numeric id so new notes cannot collide.
func (c *Controller) Import(ctx context.Context, forest model.Forest) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := tree.Validate(forest); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := c.ids.AdvancePast(ctx, tree.IDs(forest)); err != nil {
		return err
	}
	st := c.state
	st.ClearTarget()
	st.EndEdit()
	return c.commit(ctx, forest.Clone(), st)
}

// Snapshot returns a copy of the in-memory forest.
func (c *Controller) Snapshot() model.Forest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forest.Clone()
}

// State returns the current selection and edit state.
func (c *Controller) State() session.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// NextID reports the id the next created note will get.
func (c *Controller) NextID() model.ID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ids.Peek()
}

// View returns the projection of the current forest and state.
func (c *Controller) View() view.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return view.Build(c.forest, c.state)
}

func (c *Controller) commit(ctx context.Context, next model.Forest, st session.State) error {
	if err := c.snaps.SaveForest(ctx, next); err != nil {
		c.log.WithError(err).Error("persist forest")
		return err
	}
	c.forest = next
	c.state = st
	return c.renderLocked()
}

func (c *Controller) renderLocked() error {
	if err := c.sink.Replace(view.Build(c.forest, c.state)); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
