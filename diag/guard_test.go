package diag

import (
	"testing"

	"github.com/Chainscore/tsrkit-types/guard"
)

type recordingHooks struct {
	limitExceeded  []string
	invalidKeyIdx  []int
	invalidVariant []uint64
}

func (r *recordingHooks) LimitExceeded(kind string, offset, declared, limit int) {
	r.limitExceeded = append(r.limitExceeded, kind)
}
func (r *recordingHooks) InvalidKeyOrder(offset, index int)         { r.invalidKeyIdx = append(r.invalidKeyIdx, index) }
func (r *recordingHooks) InvalidVariant(offset int, discriminant uint64) {
	r.invalidVariant = append(r.invalidVariant, discriminant)
}
func (r *recordingHooks) DecodeRejected(kind string, offset int, err error) {}

func TestAttachWiresAllThreeHooks(t *testing.T) {
	rec := &recordingHooks{}
	lim := Attach(guard.Default(), rec)

	lim.Check("sequence", 0, 999, 10)
	lim.NotifyInvalidKeyOrder(0, 2)
	lim.NotifyInvalidVariant(0, 7)

	if len(rec.limitExceeded) != 1 || rec.limitExceeded[0] != "sequence" {
		t.Fatalf("LimitExceeded not forwarded: %+v", rec)
	}
	if len(rec.invalidKeyIdx) != 1 || rec.invalidKeyIdx[0] != 2 {
		t.Fatalf("InvalidKeyOrder not forwarded: %+v", rec)
	}
	if len(rec.invalidVariant) != 1 || rec.invalidVariant[0] != 7 {
		t.Fatalf("InvalidVariant not forwarded: %+v", rec)
	}
}

func TestAttachNilHooksReturnsBaseUnchanged(t *testing.T) {
	base := guard.Default()
	out := Attach(base, nil)
	if out.Hook != nil || out.OnInvalidKeyOrder != nil || out.OnInvalidVariant != nil {
		t.Fatalf("Attach(base, nil) should leave hook fields nil")
	}
}
