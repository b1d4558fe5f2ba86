package data

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	errUtils "github.com/cloudposse/ekscli/errors"
	"github.com/cloudposse/ekscli/pkg/perf"
)

// pruneNulls drops object members whose value is null, at every depth.
// Member order is kept. Nulls inside arrays and a top-level null are left alone.
func pruneNulls(doc []byte) ([]byte, error) {
	defer perf.Track(nil, "data.pruneNulls")()

	iter := codec.BorrowIterator(doc)
	defer codec.ReturnIterator(iter)
	stream := codec.BorrowStream(nil)
	defer codec.ReturnStream(stream)

	copyValue(iter, stream)
	if iter.Error != nil {
		return nil, fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrWriteOutput, iter.Error)
	}
	if stream.Error != nil {
		return nil, fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrWriteOutput, stream.Error)
	}

	return append([]byte(nil), stream.Buffer()...), nil
}

func copyValue(iter *jsoniter.Iterator, stream *jsoniter.Stream) {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		first := true
		stream.WriteObjectStart()
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
			if iter.WhatIsNext() == jsoniter.NilValue {
				iter.Skip()
				return true
			}
			if !first {
				stream.WriteMore()
			}
			first = false
			stream.WriteObjectField(field)
			copyValue(iter, stream)
			return true
		})
		stream.WriteObjectEnd()
	case jsoniter.ArrayValue:
		first := true
		stream.WriteArrayStart()
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			if !first {
				stream.WriteMore()
			}
			first = false
			copyValue(iter, stream)
			return true
		})
		stream.WriteArrayEnd()
	case jsoniter.StringValue:
		stream.WriteString(iter.ReadString())
	case jsoniter.NumberValue:
		stream.WriteRaw(string(iter.ReadNumber()))
	case jsoniter.BoolValue:
		stream.WriteBool(iter.ReadBool())
	case jsoniter.NilValue:
		iter.ReadNil()
		stream.WriteNil()
	default:
		iter.ReportError("pruneNulls", "unexpected JSON value")
	}
}
