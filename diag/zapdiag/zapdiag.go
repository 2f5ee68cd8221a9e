// Package zapdiag adapts diag.Logger onto go.uber.org/zap, and provides a
// zap-backed diag.Hooks for shops that already standardized on zap for
// everything, not just structured logs.
package zapdiag

import (
	"github.com/Chainscore/tsrkit-types/diag"
	"go.uber.org/zap"
)

// Logger adapts diag.Logger onto a *zap.Logger.
type Logger struct{ L *zap.Logger }

var _ diag.Logger = Logger{}

func (z Logger) Debug(msg string, f diag.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Info(msg string, f diag.Fields)  { z.L.Info(msg, zf(f)...) }
func (z Logger) Warn(msg string, f diag.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Logger) Error(msg string, f diag.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f diag.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}

// Hooks adapts diag.Hooks onto a *zap.Logger.
type Hooks struct{ L *zap.Logger }

var _ diag.Hooks = Hooks{}

func (h Hooks) LimitExceeded(kind string, offset, declared, limit int) {
	h.L.Warn("tsrkit.limit_exceeded",
		zap.String("kind", kind), zap.Int("offset", offset),
		zap.Int("declared", declared), zap.Int("limit", limit))
}

func (h Hooks) InvalidKeyOrder(offset, index int) {
	h.L.Warn("tsrkit.invalid_key_order", zap.Int("offset", offset), zap.Int("index", index))
}

func (h Hooks) InvalidVariant(offset int, discriminant uint64) {
	h.L.Warn("tsrkit.invalid_variant", zap.Int("offset", offset), zap.Uint64("discriminant", discriminant))
}

func (h Hooks) DecodeRejected(kind string, offset int, err error) {
	h.L.Error("tsrkit.decode_rejected", zap.String("kind", kind), zap.Int("offset", offset), zap.Error(err))
}
