// Package diag carries the observability surface for this codec:
// structured logging and lightweight event hooks fired from decode paths
// that reject input (limit ceilings, ordering/variant violations). It is
// deliberately decoupled from the core types package: guard.Limits holds
// plain hook func fields with no knowledge of diag, and Attach (guard.go)
// is the one place that wires a Hooks implementation into them, so a
// decode that never installs hooks never costs anything for diag's
// existence.
package diag

// Fields is a minimal structured field map for logs, mirroring the
// teacher's logger.go.
type Fields map[string]any

// Logger is a tiny leveled logger; adapters for slog/zap/logrus live in
// the slogdiag/zapdiag/logrusdiag subpackages. No code in this module
// calls a Logger itself.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}

// Hooks are lightweight callbacks for decode-time rejections. Implementations
// MUST be cheap and non-blocking; wrap with diag/async to offload real I/O.
type Hooks interface {
	// LimitExceeded fires when a declared length/count failed a guard
	// ceiling before allocation (kind is e.g. "sequence", "dictionary",
	// "bytearray", "string", "bits").
	LimitExceeded(kind string, offset, declared, limit int)
	// InvalidKeyOrder fires when a Dictionary's keys were not strictly
	// ascending on decode.
	InvalidKeyOrder(offset, index int)
	// InvalidVariant fires when a Choice/Enum discriminant named no
	// declared branch/variant.
	InvalidVariant(offset int, discriminant uint64)
	// DecodeRejected is for any other decode-time error (short buffer,
	// malformed UTF-8, range violations on fixed widths). No decoder in
	// this module calls it, and Attach does not wire it into guard.Limits,
	// so those errors reach only the decoder's caller.
	DecodeRejected(kind string, offset int, err error)
}

// NopHooks is the default no-op implementation.
type NopHooks struct{}

func (NopHooks) LimitExceeded(string, int, int, int)    {}
func (NopHooks) InvalidKeyOrder(int, int)                {}
func (NopHooks) InvalidVariant(int, uint64)               {}
func (NopHooks) DecodeRejected(string, int, error)        {}

// Multi returns a Hooks that fans out to all provided hooks, in order.
// Nil entries are ignored. A panicking hook propagates to the caller.
func Multi(hs ...Hooks) Hooks {
	nn := make([]Hooks, 0, len(hs))
	for _, h := range hs {
		if h != nil {
			nn = append(nn, h)
		}
	}
	return multiHooks(nn)
}

type multiHooks []Hooks

func (m multiHooks) LimitExceeded(kind string, offset, declared, limit int) {
	for _, h := range m {
		h.LimitExceeded(kind, offset, declared, limit)
	}
}
func (m multiHooks) InvalidKeyOrder(offset, index int) {
	for _, h := range m {
		h.InvalidKeyOrder(offset, index)
	}
}
func (m multiHooks) InvalidVariant(offset int, discriminant uint64) {
	for _, h := range m {
		h.InvalidVariant(offset, discriminant)
	}
}
func (m multiHooks) DecodeRejected(kind string, offset int, err error) {
	for _, h := range m {
		h.DecodeRejected(kind, offset, err)
	}
}
