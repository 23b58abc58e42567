package highlight

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"

	"gitlab.com/tozd/go/errors"
)

// recordSize is the fixed width of one encoded token:
//
//	|<---- 4 bytes ---->|<-- 2 bytes -->|<--- 2 bytes -->|
//	|   start column    |    length     |  kind ordinal  |
//
// all fields big endian, records concatenated per line.
const recordSize = 8

// Highlighting is the wire form of one changed line: the per-line record
// buffer, base64 encoded with standard alphabet and padding.
type Highlighting struct {
	Line   int    `json:"line"`
	Tokens string `json:"tokens"`
}

// Record is one decoded wire record.
type Record struct {
	Start  uint32
	Length uint16
	Kind   Kind
}

// Encode serializes a changed-line sequence into per-line base64
// payloads. An empty input encodes to an empty output list, never to a
// list of empty strings.
func Encode(lines []Line) []Highlighting {
	if len(lines) == 0 {
		return nil
	}

	out := make([]Highlighting, 0, len(lines))
	for _, line := range lines {
		buf := make([]byte, 0, len(line.Tokens)*recordSize)
		for _, tok := range line.Tokens {
			var rec [recordSize]byte
			binary.BigEndian.PutUint32(rec[0:4], uint32(tok.R.Start.Character))
			binary.BigEndian.PutUint16(rec[4:6], uint16(tok.R.End.Character-tok.R.Start.Character))
			binary.BigEndian.PutUint16(rec[6:8], uint16(tok.Kind))
			buf = append(buf, rec[:]...)
		}
		out = append(out, Highlighting{
			Line:   line.Number,
			Tokens: base64.StdEncoding.EncodeToString(buf),
		})
	}

	return out
}

// DecodeLine reconstructs the (start, length, kind) records of one line
// payload, in encoded order. It is the exact inverse of the per-line
// encoding and backs the round-trip tests and the decode debug command.
func DecodeLine(payload string) ([]Record, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Errorf("decoding base64 payload: %w", err)
	}
	if len(raw)%recordSize != 0 {
		return nil, errors.Errorf("payload length %d is not a multiple of %d", len(raw), recordSize)
	}

	recs := make([]Record, 0, len(raw)/recordSize)
	r := bytes.NewReader(raw)
	for r.Len() > 0 {
		var rec [recordSize]byte
		if _, err := r.Read(rec[:]); err != nil {
			return nil, errors.Errorf("reading record: %w", err)
		}
		recs = append(recs, Record{
			Start:  binary.BigEndian.Uint32(rec[0:4]),
			Length: binary.BigEndian.Uint16(rec[4:6]),
			Kind:   Kind(binary.BigEndian.Uint16(rec[6:8])),
		})
	}
	return recs, nil
}
