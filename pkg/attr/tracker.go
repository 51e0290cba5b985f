package attr

import "math/bits"

const wordBits = 64

// tracker is the duplicate-application bitmask: one bit per dense
// attribute ID, cleared at the start of every batch. It grows on demand
// and never shrinks, so clearing stays proportional to the words ever
// allocated, not to the id namespace.
//
// A tracker belongs to exactly one in-flight batch; it is not safe for
// concurrent use.
type tracker struct {
	words []uint64
}

// tryMark sets the bit for id and reports whether it was previously
// unset. A false return means the id was already applied in this batch;
// the tracker state is left unchanged.
func (t *tracker) tryMark(id ID) bool {
	t.ensureCapacity(id)
	word, mask := int(id)/wordBits, uint64(1)<<(uint(id)%wordBits)
	if t.words[word]&mask != 0 {
		return false
	}
	t.words[word] |= mask
	return true
}

// clear resets every bit in O(allocated words).
func (t *tracker) clear() {
	for i := range t.words {
		t.words[i] = 0
	}
}

// ensureCapacity grows the backing store to cover id, doubling so
// amortized growth cost stays constant. Previously-set bits survive.
func (t *tracker) ensureCapacity(id ID) {
	need := int(id)/wordBits + 1
	if need <= len(t.words) {
		return
	}
	size := len(t.words) * 2
	if size < need {
		size = need
	}
	grown := make([]uint64, size)
	copy(grown, t.words)
	t.words = grown
}

// count returns the number of set bits. Test and diagnostics helper.
func (t *tracker) count() int {
	n := 0
	for _, w := range t.words {
		n += bits.OnesCount64(w)
	}
	return n
}
