package flow

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"reflect"

	"google.golang.org/protobuf/encoding/protowire"
)

// BytesCodec is a simple framing codec using length-prefixed frames
// to exchange []byte over a stream.
type BytesCodec struct{}

func NewBytesCodec() BytesCodec {
	return BytesCodec{}
}

func (enc BytesCodec) Encode(w io.Writer, msg interface{}) error {
	buf, ok := msg.([]byte)
	if !ok {
		panic(
			fmt.Sprintf(
				"bytes codec can only encode []byte, got %s",
				reflect.TypeOf(msg),
			),
		)
	}
	if len(buf) > MaxFrameSize {
		return fmt.Errorf("%w: %d bytes", ErrTooLargeFrame, len(buf))
	}

	prefixedBuf := protowire.AppendVarint(
		make([]byte, 0, protowire.SizeVarint(uint64(len(buf)))+len(buf)),
		uint64(len(buf)),
	)
	prefixedBuf = append(prefixedBuf, buf...)
	_, err := w.Write(prefixedBuf)
	return err
}

func (enc BytesCodec) Decode(r io.Reader) (interface{}, error) {
	buf := make([]byte, binary.MaxVarintLen64)
	n := 0
	for {
		if n == len(buf) {
			return nil, fmt.Errorf("%w: unterminated size prefix", ErrProtocolViolation)
		}
		_, err := io.ReadFull(r, buf[n:n+1])
		if err != nil {
			if n > 0 && errors.Is(err, io.EOF) {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		n++
		if buf[n-1] < 0x80 {
			break
		}
	}

	prefix, prefixSize := protowire.ConsumeVarint(buf[:n])
	if err := protowire.ParseError(prefixSize); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProtocolViolation, err)
	}
	if prefix > MaxFrameSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLargeFrame, prefix)
	}

	buf = make([]byte, prefix)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	return buf, nil
}
