// Package logrusdiag adapts diag.Logger onto github.com/sirupsen/logrus.
package logrusdiag

import (
	"github.com/Chainscore/tsrkit-types/diag"
	"github.com/sirupsen/logrus"
)

// Logger adapts diag.Logger onto a *logrus.Entry.
type Logger struct{ E *logrus.Entry }

var _ diag.Logger = Logger{}

func (l Logger) Debug(msg string, f diag.Fields) { l.E.WithFields(logrus.Fields(f)).Debug(msg) }
func (l Logger) Info(msg string, f diag.Fields)  { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f diag.Fields)  { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f diag.Fields) { l.E.WithFields(logrus.Fields(f)).Error(msg) }

// Hooks adapts diag.Hooks onto a *logrus.Entry.
type Hooks struct{ E *logrus.Entry }

var _ diag.Hooks = Hooks{}

func (h Hooks) LimitExceeded(kind string, offset, declared, limit int) {
	h.E.WithFields(logrus.Fields{"kind": kind, "offset": offset, "declared": declared, "limit": limit}).
		Warn("tsrkit.limit_exceeded")
}

func (h Hooks) InvalidKeyOrder(offset, index int) {
	h.E.WithFields(logrus.Fields{"offset": offset, "index": index}).Warn("tsrkit.invalid_key_order")
}

func (h Hooks) InvalidVariant(offset int, discriminant uint64) {
	h.E.WithFields(logrus.Fields{"offset": offset, "discriminant": discriminant}).Warn("tsrkit.invalid_variant")
}

func (h Hooks) DecodeRejected(kind string, offset int, err error) {
	h.E.WithFields(logrus.Fields{"kind": kind, "offset": offset, "err": err}).Error("tsrkit.decode_rejected")
}
