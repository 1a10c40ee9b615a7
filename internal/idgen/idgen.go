// Package idgen hands out monotonically increasing note identifiers backed by
// a persisted counter.
package idgen

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rcliao/subnotes/internal/model"
	"github.com/rcliao/subnotes/internal/store"
)

// Generator is not safe for concurrent use; the controller owns the only one.
type Generator struct {
	kv   store.KV
	next int64
	log  logrus.FieldLogger
}

// New reads the persisted counter once. An absent, malformed or
// non-positive counter starts the sequence at 1.
func New(ctx context.Context, kv store.KV, log logrus.FieldLogger) (*Generator, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	g := &Generator{kv: kv, next: 1, log: log}

	raw, ok, err := kv.Get(ctx, store.KeyCounter)
	if err != nil {
		return nil, fmt.Errorf("load counter: %w", err)
	}
	if !ok {
		return g, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 1 {
		log.WithFields(logrus.Fields{"key": store.KeyCounter, "value": raw}).Warn("ignoring malformed id counter")
		return g, nil
	}
	g.next = n
	return g, nil
}

// Next returns the current counter value and persists its successor.
// The in-memory counter only advances once the write succeeds.
func (g *Generator) Next(ctx context.Context) (model.ID, error) {
	id := g.next
	if err := g.kv.Set(ctx, store.KeyCounter, strconv.FormatInt(id+1, 10)); err != nil {
		return model.None, fmt.Errorf("persist counter: %w", err)
	}
	g.next = id + 1
	return model.ID(strconv.FormatInt(id, 10)), nil
}

// Peek returns the id the next call to Next will hand out.
func (g *Generator) Peek() model.ID {
	return model.ID(strconv.FormatInt(g.next, 10))
}

// AdvancePast moves the counter beyond every numeric id in ids. The counter
// never moves backwards; non-numeric ids are ignored.
func (g *Generator) AdvancePast(ctx context.Context, ids []model.ID) error {
	max := g.next - 1
	for _, id := range ids {
		n, err := strconv.ParseInt(string(id), 10, 64)
		if err == nil && n > max {
			max = n
		}
	}
	if max+1 <= g.next {
		return nil
	}
	if err := g.kv.Set(ctx, store.KeyCounter, strconv.FormatInt(max+1, 10)); err != nil {
		return fmt.Errorf("persist counter: %w", err)
	}
	g.next = max + 1
	return nil
}
