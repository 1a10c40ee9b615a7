package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/rcliao/subnotes/internal/model"
)

// Keys under which the snapshot adapter persists its state.
const (
	KeyForest  = "Data"
	KeyCounter = "count"
)

// Snapshots reads and writes full forest snapshots through a KV.
type Snapshots struct {
	kv  KV
	log logrus.FieldLogger
}

// NewSnapshots wraps kv. A nil logger discards output.
func NewSnapshots(kv KV, log logrus.FieldLogger) *Snapshots {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Snapshots{kv: kv, log: log}
}

// KV returns the underlying store.
func (s *Snapshots) KV() KV { return s.kv }

// LoadForest returns the persisted forest. A missing or malformed snapshot
// yields an empty forest; only store failures are returned as errors.
func (s *Snapshots) LoadForest(ctx context.Context) (model.Forest, error) {
	raw, ok, err := s.kv.Get(ctx, KeyForest)
	if err != nil {
		return nil, fmt.Errorf("load forest: %w", err)
	}
	if !ok || raw == "" || raw == "null" {
		return model.Forest{}, nil
	}
	var forest model.Forest
	if err := json.Unmarshal([]byte(raw), &forest); err != nil {
		s.log.WithFields(logrus.Fields{"key": KeyForest, "error": err}).Warn("discarding malformed snapshot")
		return model.Forest{}, nil
	}
	if forest == nil {
		forest = model.Forest{}
	}
	return dropNil(forest), nil
}

// SaveForest persists the whole forest.
func (s *Snapshots) SaveForest(ctx context.Context, forest model.Forest) error {
	if forest == nil {
		forest = model.Forest{}
	}
	b, err := json.Marshal(forest)
	if err != nil {
		return fmt.Errorf("encode forest: %w", err)
	}
	if err := s.kv.Set(ctx, KeyForest, string(b)); err != nil {
		return fmt.Errorf("save forest: %w", err)
	}
	return nil
}

// Revision reports the store revision of the forest snapshot, if the
// backend tracks one.
func (s *Snapshots) Revision(ctx context.Context) string {
	r, ok := s.kv.(Revisioner)
	if !ok {
		return ""
	}
	rev, err := r.Revision(ctx, KeyForest)
	if err != nil {
		s.log.WithError(err).Debug("read snapshot revision")
		return ""
	}
	return rev
}

// dropNil removes null entries a hand-edited snapshot may contain.
func dropNil(level []*model.Note) []*model.Note {
	out := level[:0]
	for _, n := range level {
		if n == nil {
			continue
		}
		if len(n.ChildNotes) > 0 {
			n.ChildNotes = dropNil(n.ChildNotes)
			if len(n.ChildNotes) == 0 {
				n.ChildNotes = nil
			}
		}
		out = append(out, n)
	}
	return out
}
