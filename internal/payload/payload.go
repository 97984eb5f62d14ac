// Package payload models the value that flows through a cipher pipeline.
package payload

// Kind tags the variant carried by a Payload.
type Kind int

const (
	// KindText marks a payload carrying a string.
	KindText Kind = iota
	// KindBytes marks a payload carrying a raw byte slice.
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// Payload is a tagged union of Text(string) | Bytes([]byte). Stages declare
// the Kind they accept and the Kind they produce; the executor checks the
// tag before invoking a stage rather than relying on a runtime type query.
type Payload struct {
	kind  Kind
	text  string
	bytes []byte
}

// Text wraps a string as a text-kind payload.
func Text(s string) Payload {
	return Payload{kind: KindText, text: s}
}

// Bytes wraps a byte slice as a bytes-kind payload.
func Bytes(b []byte) Payload {
	return Payload{kind: KindBytes, bytes: b}
}

// Kind reports which variant this payload carries.
func (p Payload) Kind() Kind {
	return p.kind
}

// AsText returns the string content; ok is false if the payload is not text.
func (p Payload) AsText() (string, bool) {
	if p.kind != KindText {
		return "", false
	}
	return p.text, true
}

// AsBytes returns the byte content; ok is false if the payload is not bytes.
func (p Payload) AsBytes() (b []byte, ok bool) {
	if p.kind != KindBytes {
		return nil, false
	}
	return p.bytes, true
}

// ToBytes coerces the payload to a byte slice regardless of kind, UTF-8
// encoding text payloads. Used at scoring time, where only raw bytes matter.
func (p Payload) ToBytes() []byte {
	if p.kind == KindBytes {
		return p.bytes
	}
	return []byte(p.text)
}
