package wire

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxFrameLen bounds a single frame's payload. Large sea-board layouts
// can carry thousands of hexes; this is generous without being unbounded.
const MaxFrameLen = 1 << 20 // 1 MiB

// ReadFrame reads one self-delimiting frame: a 4-byte big-endian length
// prefix followed by that many payload bytes (opcode included).
func ReadFrame(r io.Reader) ([]byte, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("read frame header: %w", err)
	}
	n := int(binary.BigEndian.Uint32(header[:]))
	if n <= 0 || n > MaxFrameLen {
		return nil, fmt.Errorf("invalid frame length: %d", n)
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("read frame payload (%d bytes): %w", n, err)
	}
	return payload, nil
}

// WriteFrame writes one self-delimiting frame for data (opcode included).
func WriteFrame(w io.Writer, data []byte) error {
	if len(data) > MaxFrameLen {
		return fmt.Errorf("frame too large: %d bytes", len(data))
	}
	var header [4]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(data)))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write frame header: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write frame payload: %w", err)
	}
	return nil
}

// Opcode returns the MsgType tag from a decoded frame without a full
// decode, for dispatch lookups.
func Opcode(frame []byte) (MsgType, bool) {
	if len(frame) < 4 {
		return 0, false
	}
	return MsgType(int32(binary.BigEndian.Uint32(frame[:4]))), true
}
