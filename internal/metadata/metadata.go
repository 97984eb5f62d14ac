// Package metadata records the per-stage parameters consumed while running
// a pipeline, in the order the stages consumed them.
package metadata

import "fmt"

// ValueKind tags the variant carried by a Value.
type ValueKind int

const (
	KindInt ValueKind = iota
	KindStr
	KindStrPair
)

// Value is a small closed enum of the primitive types a stage parameter can
// take: an integer (e.g. a Caesar shift), a string (e.g. a dictionary key),
// or a pair of strings (e.g. the two keys of a double columnar transposition).
type Value struct {
	kind  ValueKind
	i     int
	s     string
	pairA string
	pairB string
}

func Int(v int) Value               { return Value{kind: KindInt, i: v} }
func Str(v string) Value            { return Value{kind: KindStr, s: v} }
func StrPair(a, b string) Value     { return Value{kind: KindStrPair, pairA: a, pairB: b} }
func (v Value) Kind() ValueKind     { return v.kind }
func (v Value) Int() int            { return v.i }
func (v Value) Str() string         { return v.s }
func (v Value) Pair() (string, string) { return v.pairA, v.pairB }

// String renders the value the way it should appear in a hit's reported
// metadata line.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindStr:
		return fmt.Sprintf("%q", v.s)
	case KindStrPair:
		return fmt.Sprintf("(%q, %q)", v.pairA, v.pairB)
	default:
		return "?"
	}
}

// entry is one append-only (label, value) record.
type entry struct {
	label string
	value Value
}

// Metadata is an ordered, append-only mapping from stage-parameter labels to
// primitive values. It is reported verbatim for each hit so the run can be
// reproduced from the label/value pairs alone.
type Metadata struct {
	entries []entry
}

// New returns an empty Metadata ready to be appended to.
func New() Metadata {
	return Metadata{}
}

// Put appends a (label, value) record. Labels are not deduplicated: a
// pipeline may legitimately apply the same stage kind twice.
func (m Metadata) Put(label string, value Value) Metadata {
	next := make([]entry, len(m.entries), len(m.entries)+1)
	copy(next, m.entries)
	next = append(next, entry{label: label, value: value})
	return Metadata{entries: next}
}

// Len reports the number of recorded entries.
func (m Metadata) Len() int {
	return len(m.entries)
}

// Each calls fn once per entry in append order.
func (m Metadata) Each(fn func(label string, value Value)) {
	for _, e := range m.entries {
		fn(e.label, e.value)
	}
}

// String renders the metadata as `{label: value, label: value}`, the format
// used on hit lines (spec stdout format, section 6).
func (m Metadata) String() string {
	out := "{"
	for i, e := range m.entries {
		if i > 0 {
			out += ", "
		}
		out += e.label + ": " + e.value.String()
	}
	return out + "}"
}
