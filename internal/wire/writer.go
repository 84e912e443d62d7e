package wire

import "encoding/binary"

// Writer builds a message payload. All multi-byte fields are big-endian.
type Writer struct {
	buf []byte
}

func NewWriter(t MsgType) *Writer {
	w := &Writer{buf: make([]byte, 0, 64)}
	w.WriteInt(int(t))
	return w
}

func (w *Writer) WriteInt(v int) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(int32(v)))
	w.buf = append(w.buf, b[:]...)
}

func (w *Writer) WriteLong(v int64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	w.buf = append(w.buf, b[:]...)
}

func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

func (w *Writer) WriteString(s string) {
	b := []byte(s)
	var n [2]byte
	binary.BigEndian.PutUint16(n[:], uint16(len(b)))
	w.buf = append(w.buf, n[:]...)
	w.buf = append(w.buf, b...)
}

func (w *Writer) WriteIntList(vs []int) {
	w.WriteInt(len(vs))
	for _, v := range vs {
		w.WriteInt(v)
	}
}

func (w *Writer) WriteStringList(vs []string) {
	w.WriteInt(len(vs))
	for _, v := range vs {
		w.WriteString(v)
	}
}

func (w *Writer) WriteResourceSet(rs ResourceSet) {
	for i := 0; i < int(NumResourceTypes); i++ {
		w.WriteInt(rs[i])
	}
}

func (w *Writer) WriteBoolArray(vs []bool) {
	w.WriteInt(len(vs))
	for _, v := range vs {
		w.WriteBool(v)
	}
}

func (w *Writer) WriteTradeOffer(t TradeOffer) {
	w.WriteInt(t.FromSeat)
	w.WriteBoolArray(t.ToMask)
	w.WriteResourceSet(t.Give)
	w.WriteResourceSet(t.Get)
}

// Bytes returns the built payload, opcode included.
func (w *Writer) Bytes() []byte {
	return w.buf
}
