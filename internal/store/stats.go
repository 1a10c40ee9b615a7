package store

import (
	"context"
	"os"

	"github.com/rcliao/subnotes/internal/model"
	"github.com/rcliao/subnotes/internal/tree"
)

// Stats holds store statistics.
type Stats struct {
	DBPath      string   `json:"db_path"`
	DBSizeBytes int64    `json:"db_size_bytes"`
	Backend     string   `json:"backend"`
	TotalNotes  int      `json:"total_notes"`
	TopLevel    int      `json:"top_level"`
	MaxDepth    int      `json:"max_depth"`
	NextID      model.ID `json:"next_id"`
	Revision    string   `json:"revision,omitempty"`
}

// Stats summarizes the persisted forest. nextID is supplied by the caller
// because the counter is owned by the id generator.
func (s *Snapshots) Stats(ctx context.Context, backend, dbPath string, nextID model.ID) (*Stats, error) {
	st := &Stats{DBPath: dbPath, Backend: backend, NextID: nextID}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	forest, err := s.LoadForest(ctx)
	if err != nil {
		return st, err
	}
	st.TotalNotes = tree.Count(forest)
	st.TopLevel = len(forest)
	st.MaxDepth = tree.Depth(forest)
	st.Revision = s.Revision(ctx)
	return st, nil
}
