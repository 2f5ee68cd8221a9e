// Package slogdiag adapts diag.Hooks and diag.Logger onto log/slog.
package slogdiag

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/Chainscore/tsrkit-types/diag"
)

// Options configures sampling for high-volume events, mirroring the
// teacher's sloghooks.Options pattern.
type Options struct {
	// LimitExceededEvery samples LimitExceeded events; 0 or 1 logs all.
	LimitExceededEvery uint64
}

// Hooks adapts diag.Hooks onto an *slog.Logger.
type Hooks struct {
	l    *slog.Logger
	opts Options

	limitCtr atomic.Uint64
}

var _ diag.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks { return &Hooks{l: l, opts: opts} }

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) LimitExceeded(kind string, offset, declared, limit int) {
	if h.l == nil || !sample(h.opts.LimitExceededEvery, &h.limitCtr) {
		return
	}
	h.l.Warn("tsrkit.limit_exceeded",
		"kind", kind, "offset", offset, "declared", declared, "limit", limit)
}

func (h *Hooks) InvalidKeyOrder(offset, index int) {
	if h.l == nil {
		return
	}
	h.l.Warn("tsrkit.invalid_key_order", "offset", offset, "index", index)
}

func (h *Hooks) InvalidVariant(offset int, discriminant uint64) {
	if h.l == nil {
		return
	}
	h.l.Warn("tsrkit.invalid_variant", "offset", offset, "discriminant", discriminant)
}

func (h *Hooks) DecodeRejected(kind string, offset int, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("tsrkit.decode_rejected", "kind", kind, "offset", offset, "err", err)
}

// Logger adapts diag.Logger onto an *slog.Logger.
type Logger struct{ L *slog.Logger }

var _ diag.Logger = Logger{}

func (s Logger) Debug(msg string, f diag.Fields) {
	s.L.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs(f)...)
}
func (s Logger) Info(msg string, f diag.Fields) {
	s.L.LogAttrs(context.Background(), slog.LevelInfo, msg, attrs(f)...)
}
func (s Logger) Warn(msg string, f diag.Fields) {
	s.L.LogAttrs(context.Background(), slog.LevelWarn, msg, attrs(f)...)
}
func (s Logger) Error(msg string, f diag.Fields) {
	s.L.LogAttrs(context.Background(), slog.LevelError, msg, attrs(f)...)
}

func attrs(f diag.Fields) []slog.Attr {
	if len(f) == 0 {
		return nil
	}
	out := make([]slog.Attr, 0, len(f))
	for k, v := range f {
		out = append(out, slog.Any(k, v))
	}
	return out
}
