// Package flow moves production sequences over byte streams.
//
// Every message is sent as a frame: a protobuf varint holding the payload
// size, followed by the payload itself. `BytesCodec` exchanges raw
// `[]byte` payloads, `JsonEncoder` and `JsonDecoder` put JSON documents in
// those frames.
package flow

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"reflect"
)

// MaxFrameSize is the largest payload accepted by the codecs.
const MaxFrameSize = 1 << 20

var (
	ErrTooLargeFrame     = errors.New("flow: frame was too large")
	ErrProtocolViolation = errors.New("flow: protocol violation")
	ErrUnexpectedType    = errors.New("flow: decoder returned an unexpected type")
)

// Encoder can encode messages on an `io.Writer`.
// It is supposed to return an error only when a final error is
// encountered.
type Encoder interface {
	Encode(io.Writer, interface{}) error
}

// Decoder can decode messages from an `io.Reader`.
// It returns `io.EOF` only when the stream ended cleanly between two
// frames.
type Decoder interface {
	Decode(io.Reader) (interface{}, error)
}

// WriteAll encodes every element of seq on w, and returns how many
// elements were written before the first error.
func WriteAll[T any](w io.Writer, enc Encoder, seq iter.Seq[T]) (int, error) {
	n := 0
	for msg := range seq {
		if err := enc.Encode(w, msg); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// ReadAll decodes messages from r until the stream ends.
//
// A clean end of stream is not reported. Any other error is yielded once
// and ends the sequence.
func ReadAll[T any](r io.Reader, dec Decoder) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for {
			msg, err := dec.Decode(r)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(zero, err)
				return
			}

			typed, ok := msg.(T)
			if !ok {
				yield(zero, fmt.Errorf(
					"%w: %s instead of %s",
					ErrUnexpectedType,
					reflect.TypeOf(msg),
					reflect.TypeFor[T](),
				))
				return
			}

			if !yield(typed, nil) {
				return
			}
		}
	}
}
