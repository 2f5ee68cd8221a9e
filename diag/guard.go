package diag

import "github.com/Chainscore/tsrkit-types/guard"

// Attach returns base with its hook fields wired to forward into h, so a
// decode-time rejection calls both the guard ceiling logic and the
// caller's observability stack in one step:
//
//	guard.SetCurrent(diag.Attach(guard.Default(), myHooks))
//
// This is the only coupling between guard and diag; guard itself never
// imports this package, so a decode path that never sets hooks pays
// nothing for diag's existence.
func Attach(base guard.Limits, h Hooks) guard.Limits {
	if h == nil {
		return base
	}
	base.Hook = func(kind string, offset, declared, limit int) {
		h.LimitExceeded(kind, offset, declared, limit)
	}
	base.OnInvalidKeyOrder = h.InvalidKeyOrder
	base.OnInvalidVariant = h.InvalidVariant
	return base
}
