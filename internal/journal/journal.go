// Package journal records cleanup decisions so past removals can be reviewed.
package journal

import (
	"context"
	"time"
)

// Entry is one recorded cleanup decision.
type Entry struct {
	ID         string    `json:"id" yaml:"id"`
	Fragment   string    `json:"fragment" yaml:"fragment"`
	Root       string    `json:"root,omitempty" yaml:"root,omitempty"`
	Target     string    `json:"target,omitempty" yaml:"target,omitempty"`
	Outcome    string    `json:"outcome" yaml:"outcome"`
	FreedBytes int64     `json:"freed_bytes" yaml:"freed_bytes"`
	Detail     string    `json:"detail,omitempty" yaml:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// Journal persists entries.
type Journal interface {
	Record(ctx context.Context, e *Entry) error
	// List returns the most recent entries first. limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]*Entry, error)
	Close() error
}
