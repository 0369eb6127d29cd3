package wumanber

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// A matcher is serialized as its pattern list plus construction flags,
// not as its derived shift/hash tables directly — those are cheap to
// rebuild via preprocess and would otherwise tie the encoding to
// internal table sizes. The layout is a small fixed header followed by
// length-prefixed payload.
const (
	encodingMagic   = uint32(0x574D4258) // "WMBX"
	encodingVersion = uint16(1)
)

// WriteTo serializes the Matcher's patterns and construction flags to w,
// in the format UnmarshalBinary/ReadFrom expect.
func (m *Matcher) WriteTo(w io.Writer) (int64, error) {
	var n int64

	var hdr [7]byte
	binary.LittleEndian.PutUint32(hdr[0:4], encodingMagic)
	binary.LittleEndian.PutUint16(hdr[4:6], encodingVersion)
	if m.nocase {
		hdr[6] = 1
	}
	nn, err := w.Write(hdr[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}

	if nn, err = writeLenPrefixed(w, []byte(m.name)); err != nil {
		return n + int64(nn), err
	}
	n += int64(nn)

	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(m.nPat))
	nn, err = w.Write(countBuf[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}

	for _, p := range m.patterns {
		nn, err = writeLenPrefixed(w, p)
		n += int64(nn)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func writeLenPrefixed(w io.Writer, b []byte) (int, error) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(b)))
	n, err := w.Write(lenBuf[:])
	if err != nil {
		return n, err
	}
	nn, err := w.Write(b)
	return n + nn, err
}

func readLenPrefixed(r io.Reader) ([]byte, int64, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, 0, errors.Wrap(ErrTruncated, err.Error())
	}
	length := binary.LittleEndian.Uint32(lenBuf[:])
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, 4, errors.Wrap(ErrTruncated, err.Error())
	}
	return buf, int64(4 + len(buf)), nil
}

// ReadFrom deserializes a Matcher from r, replacing the receiver's state
// and re-running preprocessing: the shift/hash tables are rebuilt, not
// deserialized directly.
func (m *Matcher) ReadFrom(r io.Reader) (int64, error) {
	var n int64

	var hdr [7]byte
	nn, err := io.ReadFull(r, hdr[:])
	n += int64(nn)
	if err != nil {
		return n, errors.Wrap(ErrTruncated, err.Error())
	}
	if binary.LittleEndian.Uint32(hdr[0:4]) != encodingMagic {
		return n, ErrBadMagic
	}
	if binary.LittleEndian.Uint16(hdr[4:6]) != encodingVersion {
		return n, ErrBadVersion
	}
	nocase := hdr[6] != 0

	name, nn64, err := readLenPrefixed(r)
	n += nn64
	if err != nil {
		return n, err
	}

	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return n, errors.Wrap(ErrTruncated, err.Error())
	}
	n += 4
	count := binary.LittleEndian.Uint32(countBuf[:])

	patterns := make([][]byte, count)
	for i := range patterns {
		p, nn64, err := readLenPrefixed(r)
		n += nn64
		if err != nil {
			return n, err
		}
		patterns[i] = p
	}

	built, err := New(patterns, &Options{NoCase: nocase, Name: string(name), Logger: m.logger})
	if err != nil {
		return n, err
	}
	*m = *built
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (m *Matcher) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (m *Matcher) UnmarshalBinary(data []byte) error {
	_, err := m.ReadFrom(bytes.NewReader(data))
	return err
}
