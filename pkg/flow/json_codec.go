package flow

import (
	"encoding/json"
	"io"
	"reflect"
)

type JsonEncoder struct {
	inner BytesCodec
}

func NewJsonEncoder() JsonEncoder {
	return JsonEncoder{
		inner: NewBytesCodec(),
	}
}

func (enc JsonEncoder) Encode(w io.Writer, msg interface{}) error {
	buf, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return enc.inner.Encode(w, buf)
}

type JsonDecoder[Msg any] struct {
	inner     BytesCodec
	allocator func() Msg
}

func NewJsonDecoder[Msg any]() JsonDecoder[Msg] {
	t := reflect.TypeFor[Msg]()
	if t.Kind() != reflect.Ptr {
		panic("it makes no sense to try to unmarshal into a non-pointer")
	}

	return JsonDecoder[Msg]{
		inner: NewBytesCodec(),
		allocator: func() Msg {
			return reflect.New(t.Elem()).Interface().(Msg)
		},
	}
}

func (dec JsonDecoder[Msg]) Decode(r io.Reader) (interface{}, error) {
	buf, err := dec.inner.Decode(r)
	if err != nil {
		return nil, err
	}

	result := dec.allocator()
	err = json.Unmarshal(buf.([]byte), result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
