// Package enumerator implements the mixed-radix bijection between a linear
// parameter-space index and a tuple of per-axis values.
package enumerator

// Enumerator holds a radix vector once so Decode never allocates beyond its
// output slice (spec section 9: "a reusable small vector avoids per-index
// heap allocation").
type Enumerator struct {
	radix []int
	// prefix[j] = product(radix[0:j]), precomputed once.
	prefix []int64
}

// New builds an Enumerator for the given radix vector. The vector is copied
// so later mutation by the caller cannot affect enumeration.
func New(radix []int) *Enumerator {
	r := make([]int, len(radix))
	copy(r, radix)

	prefix := make([]int64, len(r))
	acc := int64(1)
	for i, v := range r {
		prefix[i] = acc
		acc *= int64(v)
	}
	return &Enumerator{radix: r, prefix: prefix}
}

// Len returns the number of axes.
func (e *Enumerator) Len() int {
	return len(e.radix)
}

// Total returns the product of the radix vector (1 if there are no axes).
func (e *Enumerator) Total() int64 {
	if len(e.radix) == 0 {
		return 1
	}
	return e.prefix[len(e.prefix)-1] * int64(e.radix[len(e.radix)-1])
}

// Decode maps index (0 <= index < Total()) to its mixed-radix tuple using
// little-radix-first decomposition: d_j = (index / prefix[j]) mod radix[j].
// out must have length Len(); it is overwritten and returned, so repeated
// calls in a hot loop can reuse one slice.
func (e *Enumerator) Decode(index int64, out []int) []int {
	for j := range e.radix {
		out[j] = int((index / e.prefix[j]) % int64(e.radix[j]))
	}
	return out
}

// Encode is the inverse of Decode: it folds a tuple back into its linear
// index. It is used only by property tests verifying the bijection.
func (e *Enumerator) Encode(tuple []int) int64 {
	var index int64
	for j, d := range tuple {
		index += int64(d) * e.prefix[j]
	}
	return index
}
