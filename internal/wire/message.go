package wire

import "fmt"

// Message is a decoded wire message: a type tag plus typed fields. Every
// concrete message type below implements this interface; the catalog is
// closed (Design Note 9.1 — a discriminated union, not inheritance).
type Message interface {
	Type() MsgType
	encode(w *Writer)
	decode(r *Reader)
}

type factory func() Message

var factories = map[MsgType]factory{}

func register(t MsgType, f factory) {
	factories[t] = f
}

// Encode serializes m into a payload (opcode included, unframed).
func Encode(m Message) []byte {
	w := NewWriter(m.Type())
	m.encode(w)
	return w.Bytes()
}

// Decode parses a payload (as produced by Encode, or read via ReadFrame)
// into its concrete Message. Unknown type tags return an error so callers
// can drop the frame and continue the session per §7's decoding-error rule.
func Decode(payload []byte) (Message, error) {
	r := NewReader(payload)
	tag := MsgType(r.ReadInt())
	f, ok := factories[tag]
	if !ok {
		return nil, fmt.Errorf("wire: unknown message type %d", int(tag))
	}
	m := f()
	m.decode(r)
	if r.Err() != nil {
		return nil, fmt.Errorf("wire: decode %s: %w", tag, r.Err())
	}
	return m, nil
}
