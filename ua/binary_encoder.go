// Copyright 2025 UAForge Authors. All rights reserved.

package ua

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"reflect"
	"sync"
	"time"
	"unsafe"

	"github.com/djherbis/buffer"
	"github.com/google/uuid"
)

var (
	typeToEncoderMap sync.Map

	typeDateTime        = reflect.TypeOf((*time.Time)(nil)).Elem()
	typeGUID            = reflect.TypeOf((*uuid.UUID)(nil)).Elem()
	typeByteString      = reflect.TypeOf((*ByteString)(nil)).Elem()
	typeXMLElement      = reflect.TypeOf((*XMLElement)(nil)).Elem()
	typeNodeID          = reflect.TypeOf((*NodeID)(nil)).Elem()
	typeExpandedNodeID  = reflect.TypeOf((*ExpandedNodeID)(nil)).Elem()
	typeStatusCode      = reflect.TypeOf((*StatusCode)(nil)).Elem()
	typeQualifiedName   = reflect.TypeOf((*QualifiedName)(nil)).Elem()
	typeLocalizedText   = reflect.TypeOf((*LocalizedText)(nil)).Elem()
	typeExtensionObject = reflect.TypeOf((*ExtensionObject)(nil)).Elem()
	typeDataValue       = reflect.TypeOf((*DataValue)(nil)).Elem()
	typeVariant         = reflect.TypeOf((*Variant)(nil)).Elem()
	typeDiagnosticInfo  = reflect.TypeOf((*DiagnosticInfo)(nil)).Elem()

	nilPtr unsafe.Pointer
)

// interfaceHeader mirrors the layout of an interface value.
type interfaceHeader struct {
	typ unsafe.Pointer
	ptr unsafe.Pointer
}

// stringHeader mirrors the layout of a string.
type stringHeader struct {
	data unsafe.Pointer
	len  int
}

// sliceHeader mirrors the layout of a slice.
type sliceHeader struct {
	data unsafe.Pointer
	len  int
	cap  int
}

// BinaryEncoder encodes the UA binary protocol.
type BinaryEncoder struct {
	w  io.Writer
	ec EncodingContext
	bs [8]byte
}

// NewBinaryEncoder returns a new encoder that writes to an io.Writer.
func NewBinaryEncoder(w io.Writer, ec EncodingContext) *BinaryEncoder {
	return &BinaryEncoder{w, ec, [8]byte{}}
}

type encoderFunc func(*BinaryEncoder, unsafe.Pointer) error

// Encode encodes the value using the UA Binary protocol.
func (enc *BinaryEncoder) Encode(v any) error {
	typ := reflect.TypeOf(v)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	ptr := ((*interfaceHeader)(unsafe.Pointer(&v))).ptr

	// try to retrieve encoder from cache.
	if f, ok := typeToEncoderMap.Load(typ); ok {

		// if found, call it.
		if err := f.(encoderFunc)(enc, ptr); err != nil {
			return err
		}
		return nil
	}

	f, err := getEncoder(typ)
	if err != nil {
		return err
	}
	typeToEncoderMap.Store(typ, f)

	// call the encoder
	if err := f(enc, ptr); err != nil {
		return err
	}
	return nil
}

func getEncoder(typ reflect.Type) (encoderFunc, error) {
	switch typ.Kind() {
	case reflect.Struct:
		switch typ {
		case typeDateTime:
			return getDateTimeEncoder()
		case typeGUID:
			return getGUIDEncoder()
		case typeExpandedNodeID:
			return getExpandedNodeIDEncoder()
		case typeQualifiedName:
			return getQualifiedNameEncoder()
		case typeLocalizedText:
			return getLocalizedTextEncoder()
		case typeDataValue:
			return getDataValueEncoder()
		case typeDiagnosticInfo:
			return getDiagnosticInfoEncoder()
		default:
			return getStructEncoder(typ)
		}
	case reflect.Slice:
		switch elemTyp := typ.Elem(); elemTyp.Kind() {
		case reflect.Uint8:
			return getByteArrayEncoder()
		case reflect.Slice:
			switch elemTyp := elemTyp.Elem(); elemTyp.Kind() {
			case reflect.Slice:
				return get3DSliceEncoder(typ)
			default:
				return get2DSliceEncoder(typ)
			}
		default:
			return getSliceEncoder(typ)
		}
	case reflect.Ptr:
		typ = typ.Elem()
		return getStructPtrEncoder(typ)
	case reflect.Interface:
		switch typ {
		case typeNodeID:
			return getNodeIDEncoder()
		case typeExtensionObject:
			return getExtensionObjectEncoder()
		case typeVariant:
			return getVariantEncoder()
		}
	case reflect.Bool:
		return getBooleanEncoder()
	case reflect.Int8:
		return getSByteEncoder()
	case reflect.Uint8:
		return getByteEncoder()
	case reflect.Int16:
		return getInt16Encoder()
	case reflect.Uint16:
		return getUInt16Encoder()
	case reflect.Int32:
		return getInt32Encoder()
	case reflect.Uint32:
		return getUInt32Encoder()
	case reflect.Int64:
		return getInt64Encoder()
	case reflect.Uint64:
		return getUInt64Encoder()
	case reflect.Float32:
		return getFloatEncoder()
	case reflect.Float64:
		return getDoubleEncoder()
	case reflect.String:
		return getStringEncoder()
	}
	return nil, fmt.Errorf("unsupported type: %s", typ)
}

func getStructEncoder(typ reflect.Type) (encoderFunc, error) {
	encoders := []encoderFunc{}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		enc, err := getEncoder(field.Type)
		if err != nil {
			return nil, err
		}
		offset := field.Offset
		encoders = append(encoders, func(buf *BinaryEncoder, p unsafe.Pointer) error {
			return enc(buf, unsafe.Pointer(uintptr(p)+offset))
		})
	}
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		for _, enc := range encoders {
			if err := enc(buf, p); err != nil {
				return err
			}
		}
		return nil
	}, nil
}

func getStructPtrEncoder(typ reflect.Type) (encoderFunc, error) {
	encoders := []encoderFunc{}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		enc, err := getEncoder(field.Type)
		if err != nil {
			return nil, err
		}
		offset := field.Offset
		encoders = append(encoders, func(buf *BinaryEncoder, p unsafe.Pointer) error {
			return enc(buf, unsafe.Pointer(uintptr(p)+offset))
		})
	}
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		p2 := unsafe.Pointer(*(**struct{})(p))
		if p2 == nilPtr {
			// a nil pointer writes as the zero value
			v := reflect.New(typ)
			p2 = unsafe.Pointer(v.Pointer())
		}
		for _, enc := range encoders {
			if err := enc(buf, p2); err != nil {
				return err
			}
		}
		return nil
	}, nil
}

func getSliceEncoder(typ reflect.Type) (encoderFunc, error) {
	elem := typ.Elem()
	elemSize := elem.Size()
	elemEncoder, err := getEncoder(elem)
	if err != nil {
		return nil, err
	}
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		hdr := (*sliceHeader)(p)
		if hdr.data == nilPtr {
			return buf.WriteInt32(-1)
		}
		if err := buf.WriteInt32(int32(hdr.len)); err != nil {
			return err
		}
		p2 := hdr.data
		for i := 0; i < hdr.len; i++ {
			if err := elemEncoder(buf, p2); err != nil {
				return err
			}
			p2 = unsafe.Pointer(uintptr(p2) + elemSize)
		}
		return nil
	}, nil
}

func get2DSliceEncoder(typ reflect.Type) (encoderFunc, error) {
	// multi-dimensional arrays appear on the wire only inside Variants
	return nil, BadEncodingError
}

func get3DSliceEncoder(typ reflect.Type) (encoderFunc, error) {
	return nil, BadEncodingError
}

func getBooleanEncoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteBoolean(*(*bool)(p))
	}, nil
}
func getSByteEncoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteSByte(*(*int8)(p))
	}, nil
}
func getByteEncoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteByte(*(*byte)(p))
	}, nil
}
func getInt16Encoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteInt16(*(*int16)(p))
	}, nil
}
func getUInt16Encoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteUInt16(*(*uint16)(p))
	}, nil
}
func getInt32Encoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteInt32(*(*int32)(p))
	}, nil
}
func getUInt32Encoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteUInt32(*(*uint32)(p))
	}, nil
}
func getInt64Encoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteInt64(*(*int64)(p))
	}, nil
}
func getUInt64Encoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteUInt64(*(*uint64)(p))
	}, nil
}
func getFloatEncoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteFloat(*(*float32)(p))
	}, nil
}
func getDoubleEncoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteDouble(*(*float64)(p))
	}, nil
}
func getStringEncoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteString(*(*string)(p))
	}, nil
}
func getNodeIDEncoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteNodeID(*(*NodeID)(p))
	}, nil
}
func getExpandedNodeIDEncoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteExpandedNodeID(*(*ExpandedNodeID)(p))
	}, nil
}
func getDateTimeEncoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteDateTime(*(*time.Time)(p))
	}, nil
}
func getGUIDEncoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteGUID(*(*uuid.UUID)(p))
	}, nil
}
func getQualifiedNameEncoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteQualifiedName(*(*QualifiedName)(p))
	}, nil
}
func getLocalizedTextEncoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteLocalizedText(*(*LocalizedText)(p))
	}, nil
}
func getExtensionObjectEncoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteExtensionObject(*(*ExtensionObject)(p))
	}, nil
}
func getVariantEncoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteVariant(*(*Variant)(p))
	}, nil
}
func getDataValueEncoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteDataValue(*(*DataValue)(p))
	}, nil
}
func getDiagnosticInfoEncoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteDiagnosticInfo(*(*DiagnosticInfo)(p))
	}, nil
}
func getByteArrayEncoder() (encoderFunc, error) {
	return func(buf *BinaryEncoder, p unsafe.Pointer) error {
		return buf.WriteByteArray(*(*[]byte)(p))
	}, nil
}

// WriteBoolean writes a boolean.
func (enc *BinaryEncoder) WriteBoolean(value bool) error {
	if value {
		enc.bs[0] = 1
	} else {
		enc.bs[0] = 0
	}
	if _, err := enc.w.Write(enc.bs[:1]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteSByte writes a sbyte.
func (enc *BinaryEncoder) WriteSByte(value int8) error {
	enc.bs[0] = byte(value)
	if _, err := enc.w.Write(enc.bs[:1]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteByte writes a byte.
func (enc *BinaryEncoder) WriteByte(value byte) error {
	enc.bs[0] = value
	if _, err := enc.w.Write(enc.bs[:1]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteInt16 writes an int16.
func (enc *BinaryEncoder) WriteInt16(value int16) error {
	binary.LittleEndian.PutUint16(enc.bs[:2], uint16(value))
	if _, err := enc.w.Write(enc.bs[:2]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteUInt16 writes a uint16.
func (enc *BinaryEncoder) WriteUInt16(value uint16) error {
	binary.LittleEndian.PutUint16(enc.bs[:2], value)
	if _, err := enc.w.Write(enc.bs[:2]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteInt32 writes an int32.
func (enc *BinaryEncoder) WriteInt32(value int32) error {
	binary.LittleEndian.PutUint32(enc.bs[:4], uint32(value))
	if _, err := enc.w.Write(enc.bs[:4]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteUInt32 writes a uint32.
func (enc *BinaryEncoder) WriteUInt32(value uint32) error {
	binary.LittleEndian.PutUint32(enc.bs[:4], value)
	if _, err := enc.w.Write(enc.bs[:4]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteInt64 writes an int64.
func (enc *BinaryEncoder) WriteInt64(value int64) error {
	binary.LittleEndian.PutUint64(enc.bs[:8], uint64(value))
	if _, err := enc.w.Write(enc.bs[:8]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteUInt64 writes a uint64.
func (enc *BinaryEncoder) WriteUInt64(value uint64) error {
	binary.LittleEndian.PutUint64(enc.bs[:8], value)
	if _, err := enc.w.Write(enc.bs[:8]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteFloat writes a float.
func (enc *BinaryEncoder) WriteFloat(value float32) error {
	binary.LittleEndian.PutUint32(enc.bs[:4], math.Float32bits(value))
	if _, err := enc.w.Write(enc.bs[:4]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteDouble writes a double.
func (enc *BinaryEncoder) WriteDouble(value float64) error {
	binary.LittleEndian.PutUint64(enc.bs[:8], math.Float64bits(value))
	if _, err := enc.w.Write(enc.bs[:8]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteString writes a string.
func (enc *BinaryEncoder) WriteString(value string) error {
	if len(value) == 0 {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	// write the string bytes without allocating a copy.
	var bytes []byte
	str := (*stringHeader)(unsafe.Pointer(&value))
	slice := (*sliceHeader)(unsafe.Pointer(&bytes))
	slice.data = str.data
	slice.len = str.len
	slice.cap = str.len
	if _, err := enc.w.Write(bytes); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteDateTime writes a date/time.
func (enc *BinaryEncoder) WriteDateTime(value time.Time) error {
	// ticks are 100 nanosecond intervals since January 1, 1601
	ticks := (value.Unix()+11644473600)*10000000 + int64(value.Nanosecond())/100
	if ticks < 0 {
		ticks = 0
	}
	if ticks >= 2650467743990000000 {
		ticks = 0x7FFFFFFFFFFFFFFF
	}
	if err := enc.WriteInt64(ticks); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteGUID writes a UUID.
func (enc *BinaryEncoder) WriteGUID(value uuid.UUID) error {
	enc.bs[0] = value[3]
	enc.bs[1] = value[2]
	enc.bs[2] = value[1]
	enc.bs[3] = value[0]
	enc.bs[4] = value[5]
	enc.bs[5] = value[4]
	enc.bs[6] = value[7]
	enc.bs[7] = value[6]
	if _, err := enc.w.Write(enc.bs[:8]); err != nil {
		return BadEncodingError
	}
	if _, err := enc.w.Write(value[8:]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteByteString writes a ByteString.
func (enc *BinaryEncoder) WriteByteString(value ByteString) error {
	if len(value) == 0 {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	// write the string bytes without allocating a copy.
	var bytes []byte
	str := (*stringHeader)(unsafe.Pointer(&value))
	slice := (*sliceHeader)(unsafe.Pointer(&bytes))
	slice.data = str.data
	slice.len = str.len
	slice.cap = str.len
	if _, err := enc.w.Write(bytes); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteXMLElement writes an XMLElement.
func (enc *BinaryEncoder) WriteXMLElement(value XMLElement) error {
	return enc.WriteString(string(value))
}

// WriteNodeID writes a NodeID.
func (enc *BinaryEncoder) WriteNodeID(value NodeID) error {
	switch value2 := value.(type) {
	case nil:
		// a nil NodeID writes as the two byte form, id 0
		enc.bs[0] = 0x00
		enc.bs[1] = 0x00
		if _, err := enc.w.Write(enc.bs[:2]); err != nil {
			return BadEncodingError
		}
		return nil

	case NodeIDNumeric:
		switch {
		case value2.ID <= 255 && value2.NamespaceIndex == 0:
			if err := enc.WriteByte(0x00); err != nil {
				return BadEncodingError
			}
			if err := enc.WriteByte(byte(value2.ID)); err != nil {
				return BadEncodingError
			}
		case value2.ID <= 65535 && value2.NamespaceIndex <= 255:
			if err := enc.WriteByte(0x01); err != nil {
				return BadEncodingError
			}
			if err := enc.WriteByte(byte(value2.NamespaceIndex)); err != nil {
				return BadEncodingError
			}
			if err := enc.WriteUInt16(uint16(value2.ID)); err != nil {
				return BadEncodingError
			}
		default:
			if err := enc.WriteByte(0x02); err != nil {
				return BadEncodingError
			}
			if err := enc.WriteUInt16(value2.NamespaceIndex); err != nil {
				return BadEncodingError
			}
			if err := enc.WriteUInt32(value2.ID); err != nil {
				return BadEncodingError
			}
		}
		return nil

	case NodeIDString:
		if err := enc.WriteByte(0x03); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteUInt16(value2.NamespaceIndex); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteString(value2.ID); err != nil {
			return BadEncodingError
		}
		return nil

	case NodeIDGUID:
		if err := enc.WriteByte(0x04); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteUInt16(value2.NamespaceIndex); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteGUID(value2.ID); err != nil {
			return BadEncodingError
		}
		return nil

	case NodeIDOpaque:
		if err := enc.WriteByte(0x05); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteUInt16(value2.NamespaceIndex); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteByteString(value2.ID); err != nil {
			return BadEncodingError
		}
		return nil

	default:
		return BadEncodingError
	}
}

// WriteExpandedNodeID writes an ExpandedNodeID.
func (enc *BinaryEncoder) WriteExpandedNodeID(value ExpandedNodeID) error {
	svr := value.ServerIndex
	nsu := value.NamespaceURI
	var b byte
	if len(nsu) > 0 {
		b |= 0x80
	}
	if svr > 0 {
		b |= 0x40
	}
	switch value2 := value.NodeID.(type) {
	case nil:
		if err := enc.WriteByte(0x00 | b); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteByte(0x00); err != nil {
			return BadEncodingError
		}

	case NodeIDNumeric:
		ns := value2.NamespaceIndex
		if (b & 0x80) != 0 {
			ns = 0
		}
		id := value2.ID
		switch {
		case id <= 255 && ns == 0:
			if err := enc.WriteByte(0x00 | b); err != nil {
				return BadEncodingError
			}
			if err := enc.WriteByte(byte(id)); err != nil {
				return BadEncodingError
			}
		case id <= 65535 && ns <= 255:
			if err := enc.WriteByte(0x01 | b); err != nil {
				return BadEncodingError
			}
			if err := enc.WriteByte(byte(ns)); err != nil {
				return BadEncodingError
			}
			if err := enc.WriteUInt16(uint16(id)); err != nil {
				return BadEncodingError
			}
		default:
			if err := enc.WriteByte(0x02 | b); err != nil {
				return BadEncodingError
			}
			if err := enc.WriteUInt16(ns); err != nil {
				return BadEncodingError
			}
			if err := enc.WriteUInt32(id); err != nil {
				return BadEncodingError
			}
		}

	case NodeIDString:
		ns := value2.NamespaceIndex
		if (b & 0x80) != 0 {
			ns = 0
		}
		if err := enc.WriteByte(0x03 | b); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteUInt16(ns); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteString(value2.ID); err != nil {
			return BadEncodingError
		}

	case NodeIDGUID:
		ns := value2.NamespaceIndex
		if (b & 0x80) != 0 {
			ns = 0
		}
		if err := enc.WriteByte(0x04 | b); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteUInt16(ns); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteGUID(value2.ID); err != nil {
			return BadEncodingError
		}

	case NodeIDOpaque:
		ns := value2.NamespaceIndex
		if (b & 0x80) != 0 {
			ns = 0
		}
		if err := enc.WriteByte(0x05 | b); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteUInt16(ns); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteByteString(value2.ID); err != nil {
			return BadEncodingError
		}

	default:
		return BadEncodingError
	}
	if (b & 0x80) != 0 {
		if err := enc.WriteString(nsu); err != nil {
			return BadEncodingError
		}
	}
	if (b & 0x40) != 0 {
		if err := enc.WriteUInt32(svr); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteStatusCode writes a StatusCode.
func (enc *BinaryEncoder) WriteStatusCode(value StatusCode) error {
	if err := enc.WriteUInt32(uint32(value)); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteQualifiedName writes a QualifiedName.
func (enc *BinaryEncoder) WriteQualifiedName(value QualifiedName) error {
	if err := enc.WriteUInt16(value.NamespaceIndex); err != nil {
		return BadEncodingError
	}
	return enc.WriteString(value.Name)
}

// WriteLocalizedText writes a LocalizedText.
func (enc *BinaryEncoder) WriteLocalizedText(value LocalizedText) error {
	var b byte
	if value.Locale != "" {
		b |= 1
	}
	if value.Text != "" {
		b |= 2
	}
	if err := enc.WriteByte(b); err != nil {
		return BadEncodingError
	}
	if (b & 1) != 0 {
		if err := enc.WriteString(value.Locale); err != nil {
			return BadEncodingError
		}
	}
	if (b & 2) != 0 {
		if err := enc.WriteString(value.Text); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteExtensionObject writes a structure as an ExtensionObject.
// The structure type must be registered with a binary encoding id.
func (enc *BinaryEncoder) WriteExtensionObject(value ExtensionObject) error {
	if value == nil {
		if err := enc.WriteUInt16(0); err != nil {
			return BadEncodingError
		}
		return enc.WriteByte(0x00)
	}
	// lookup encoding id
	typ := reflect.TypeOf(value)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	id, ok := FindBinaryEncodingIDForType(typ)
	if !ok {
		return BadEncodingError
	}
	if err := enc.WriteNodeID(ToNodeID(id, enc.ec.NamespaceURIs())); err != nil {
		return BadEncodingError
	}
	if err := enc.WriteByte(0x01); err != nil {
		return BadEncodingError
	}
	// if the sink supports writing at an offset, reserve the length
	// field and fix it up after encoding the body.
	switch buf := enc.w.(type) {
	case buffer.BufferAt:
		mark := buf.Len()
		bs := make([]byte, 4)
		if _, err := buf.Write(bs); err != nil {
			return BadEncodingError
		}
		start := buf.Len()
		if err := enc.Encode(value); err != nil {
			return BadEncodingError
		}
		end := buf.Len()
		binary.LittleEndian.PutUint32(bs, uint32(end-start))
		if _, err := buf.WriteAt(bs, mark); err != nil {
			return BadEncodingError
		}
		return nil

	case *Writer:
		mark := buf.Len()
		bs := make([]byte, 4)
		if _, err := buf.Write(bs); err != nil {
			return BadEncodingError
		}
		start := buf.Len()
		if err := enc.Encode(value); err != nil {
			return BadEncodingError
		}
		end := buf.Len()
		binary.LittleEndian.PutUint32(bs, uint32(end-start))
		if _, err := buf.WriteAt(bs, int64(mark)); err != nil {
			return BadEncodingError
		}
		return nil
	}
	// otherwise encode the body to a temporary buffer to measure it.
	body := buffer.NewPartitionAt(bufferPool)
	bodyEncoder := NewBinaryEncoder(body, enc.ec)
	if err := bodyEncoder.Encode(value); err != nil {
		body.Reset()
		return BadEncodingError
	}
	if err := enc.WriteInt32(int32(body.Len())); err != nil {
		body.Reset()
		return BadEncodingError
	}
	bs := bytesPool.Get().([]byte)
	if _, err := io.CopyBuffer(enc.w, body, bs); err != nil {
		bytesPool.Put(bs)
		body.Reset()
		return BadEncodingError
	}
	bytesPool.Put(bs)
	body.Reset()
	return nil
}

// WriteDataValue writes a DataValue.
func (enc *BinaryEncoder) WriteDataValue(value DataValue) error {
	var b byte
	if value.Value != nil {
		b |= 1
	}
	if value.StatusCode != 0 {
		b |= 2
	}
	if !value.SourceTimestamp.IsZero() {
		b |= 4
	}
	if value.SourcePicoseconds != 0 {
		b |= 16
	}
	if !value.ServerTimestamp.IsZero() {
		b |= 8
	}
	if value.ServerPicoseconds != 0 {
		b |= 32
	}
	if err := enc.WriteByte(b); err != nil {
		return BadEncodingError
	}
	if (b & 1) != 0 {
		if err := enc.WriteVariant(value.Value); err != nil {
			return BadEncodingError
		}
	}
	if (b & 2) != 0 {
		if err := enc.WriteStatusCode(value.StatusCode); err != nil {
			return BadEncodingError
		}
	}
	if (b & 4) != 0 {
		if err := enc.WriteDateTime(value.SourceTimestamp); err != nil {
			return BadEncodingError
		}
	}
	if (b & 16) != 0 {
		if err := enc.WriteUInt16(value.SourcePicoseconds); err != nil {
			return BadEncodingError
		}
	}
	if (b & 8) != 0 {
		if err := enc.WriteDateTime(value.ServerTimestamp); err != nil {
			return BadEncodingError
		}
	}
	if (b & 32) != 0 {
		if err := enc.WriteUInt16(value.ServerPicoseconds); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteVariant writes a Variant.
func (enc *BinaryEncoder) WriteVariant(value Variant) error {
	if value == nil {
		return enc.WriteByte(VariantTypeNull)
	}
	switch value2 := value.(type) {
	case bool:
		if err := enc.WriteByte(VariantTypeBoolean); err != nil {
			return BadEncodingError
		}
		return enc.WriteBoolean(value2)

	case int8:
		if err := enc.WriteByte(VariantTypeSByte); err != nil {
			return BadEncodingError
		}
		return enc.WriteSByte(value2)

	case byte:
		if err := enc.WriteByte(VariantTypeByte); err != nil {
			return BadEncodingError
		}
		return enc.WriteByte(value2)

	case int16:
		if err := enc.WriteByte(VariantTypeInt16); err != nil {
			return BadEncodingError
		}
		return enc.WriteInt16(value2)

	case uint16:
		if err := enc.WriteByte(VariantTypeUInt16); err != nil {
			return BadEncodingError
		}
		return enc.WriteUInt16(value2)

	case int32:
		if err := enc.WriteByte(VariantTypeInt32); err != nil {
			return BadEncodingError
		}
		return enc.WriteInt32(value2)

	case uint32:
		if err := enc.WriteByte(VariantTypeUInt32); err != nil {
			return BadEncodingError
		}
		return enc.WriteUInt32(value2)

	case int64:
		if err := enc.WriteByte(VariantTypeInt64); err != nil {
			return BadEncodingError
		}
		return enc.WriteInt64(value2)

	case uint64:
		if err := enc.WriteByte(VariantTypeUInt64); err != nil {
			return BadEncodingError
		}
		return enc.WriteUInt64(value2)

	case float32:
		if err := enc.WriteByte(VariantTypeFloat); err != nil {
			return BadEncodingError
		}
		return enc.WriteFloat(value2)

	case float64:
		if err := enc.WriteByte(VariantTypeDouble); err != nil {
			return BadEncodingError
		}
		return enc.WriteDouble(value2)

	case string:
		if err := enc.WriteByte(VariantTypeString); err != nil {
			return BadEncodingError
		}
		return enc.WriteString(value2)

	case time.Time:
		if err := enc.WriteByte(VariantTypeDateTime); err != nil {
			return BadEncodingError
		}
		return enc.WriteDateTime(value2)

	case uuid.UUID:
		if err := enc.WriteByte(VariantTypeGUID); err != nil {
			return BadEncodingError
		}
		return enc.WriteGUID(value2)

	case ByteString:
		if err := enc.WriteByte(VariantTypeByteString); err != nil {
			return BadEncodingError
		}
		return enc.WriteByteString(value2)

	case XMLElement:
		if err := enc.WriteByte(VariantTypeXMLElement); err != nil {
			return BadEncodingError
		}
		return enc.WriteXMLElement(value2)

	case NodeID:
		if err := enc.WriteByte(VariantTypeNodeID); err != nil {
			return BadEncodingError
		}
		return enc.WriteNodeID(value2)

	case ExpandedNodeID:
		if err := enc.WriteByte(VariantTypeExpandedNodeID); err != nil {
			return BadEncodingError
		}
		return enc.WriteExpandedNodeID(value2)

	case StatusCode:
		if err := enc.WriteByte(VariantTypeStatusCode); err != nil {
			return BadEncodingError
		}
		return enc.WriteStatusCode(value2)

	case QualifiedName:
		if err := enc.WriteByte(VariantTypeQualifiedName); err != nil {
			return BadEncodingError
		}
		return enc.WriteQualifiedName(value2)

	case LocalizedText:
		if err := enc.WriteByte(VariantTypeLocalizedText); err != nil {
			return BadEncodingError
		}
		return enc.WriteLocalizedText(value2)

	case DataValue:
		if err := enc.WriteByte(VariantTypeDataValue); err != nil {
			return BadEncodingError
		}
		return enc.WriteDataValue(value2)

	case DiagnosticInfo:
		if err := enc.WriteByte(VariantTypeDiagnosticInfo); err != nil {
			return BadEncodingError
		}
		return enc.WriteDiagnosticInfo(value2)

	case []bool:
		if err := enc.WriteByte(VariantTypeBoolean | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteBooleanArray(value2)

	case []int8:
		if err := enc.WriteByte(VariantTypeSByte | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteSByteArray(value2)

	case []byte:
		if err := enc.WriteByte(VariantTypeByte | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteByteArray(value2)

	case []int16:
		if err := enc.WriteByte(VariantTypeInt16 | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteInt16Array(value2)

	case []uint16:
		if err := enc.WriteByte(VariantTypeUInt16 | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteUInt16Array(value2)

	case []int32:
		if err := enc.WriteByte(VariantTypeInt32 | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteInt32Array(value2)

	case []uint32:
		if err := enc.WriteByte(VariantTypeUInt32 | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteUInt32Array(value2)

	case []int64:
		if err := enc.WriteByte(VariantTypeInt64 | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteInt64Array(value2)

	case []uint64:
		if err := enc.WriteByte(VariantTypeUInt64 | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteUInt64Array(value2)

	case []float32:
		if err := enc.WriteByte(VariantTypeFloat | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteFloatArray(value2)

	case []float64:
		if err := enc.WriteByte(VariantTypeDouble | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteDoubleArray(value2)

	case []string:
		if err := enc.WriteByte(VariantTypeString | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteStringArray(value2)

	case []time.Time:
		if err := enc.WriteByte(VariantTypeDateTime | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteDateTimeArray(value2)

	case []uuid.UUID:
		if err := enc.WriteByte(VariantTypeGUID | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteGUIDArray(value2)

	case []ByteString:
		if err := enc.WriteByte(VariantTypeByteString | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteByteStringArray(value2)

	case []XMLElement:
		if err := enc.WriteByte(VariantTypeXMLElement | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteXMLElementArray(value2)

	case []NodeID:
		if err := enc.WriteByte(VariantTypeNodeID | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteNodeIDArray(value2)

	case []ExpandedNodeID:
		if err := enc.WriteByte(VariantTypeExpandedNodeID | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteExpandedNodeIDArray(value2)

	case []StatusCode:
		if err := enc.WriteByte(VariantTypeStatusCode | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteStatusCodeArray(value2)

	case []QualifiedName:
		if err := enc.WriteByte(VariantTypeQualifiedName | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteQualifiedNameArray(value2)

	case []LocalizedText:
		if err := enc.WriteByte(VariantTypeLocalizedText | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteLocalizedTextArray(value2)

	case []ExtensionObject:
		if err := enc.WriteByte(VariantTypeExtensionObject | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteExtensionObjectArray(value2)

	case []DataValue:
		if err := enc.WriteByte(VariantTypeDataValue | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteDataValueArray(value2)

	case []Variant:
		if err := enc.WriteByte(VariantTypeVariant | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteVariantArray(value2)

	case []DiagnosticInfo:
		if err := enc.WriteByte(VariantTypeDiagnosticInfo | VariantTypeArray); err != nil {
			return BadEncodingError
		}
		return enc.WriteDiagnosticInfoArray(value2)

	default:
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Int32: // e.g. enums
			if err := enc.WriteByte(VariantTypeInt32); err != nil {
				return BadEncodingError
			}
			return enc.WriteInt32(int32(rv.Int()))

		case reflect.Slice:
			elemTyp := rv.Type().Elem()
			if elemTyp.Kind() == reflect.Slice {
				return enc.writeMultiDimensionalVariant(rv)
			}
			if elemTyp.Kind() == reflect.Int32 { // e.g. []enum
				if err := enc.WriteByte(VariantTypeInt32 | VariantTypeArray); err != nil {
					return BadEncodingError
				}
				if err := enc.WriteInt32(int32(rv.Len())); err != nil {
					return BadEncodingError
				}
				for i := 0; i < rv.Len(); i++ {
					if err := enc.WriteInt32(int32(rv.Index(i).Int())); err != nil {
						return BadEncodingError
					}
				}
				return nil
			}
		}
		// registered structures write as an ExtensionObject.
		if err := enc.WriteByte(VariantTypeExtensionObject); err != nil {
			return BadEncodingError
		}
		return enc.WriteExtensionObject(value)
	}
}

// writeMultiDimensionalVariant writes a two or three dimensional slice
// as a flattened array followed by the dimensions.
func (enc *BinaryEncoder) writeMultiDimensionalVariant(rv reflect.Value) error {
	base := rv.Type()
	depth := 0
	for base.Kind() == reflect.Slice {
		depth++
		base = base.Elem()
	}
	if depth != 2 && depth != 3 {
		return BadEncodingError
	}
	vt, ok := variantTypeOf(base)
	if !ok {
		return BadEncodingError
	}
	if err := enc.WriteByte(vt | VariantTypeArray | VariantTypeMultiDimensionArray); err != nil {
		return BadEncodingError
	}
	flat := reflect.MakeSlice(reflect.SliceOf(base), 0, 0)
	var dims []int32
	switch depth {
	case 2:
		d0 := rv.Len()
		d1 := 0
		if d0 > 0 {
			d1 = rv.Index(0).Len()
		}
		for i := 0; i < d0; i++ {
			flat = reflect.AppendSlice(flat, rv.Index(i))
		}
		dims = []int32{int32(d0), int32(d1)}
	case 3:
		d0 := rv.Len()
		d1, d2 := 0, 0
		if d0 > 0 {
			d1 = rv.Index(0).Len()
			if d1 > 0 {
				d2 = rv.Index(0).Index(0).Len()
			}
		}
		for i := 0; i < d0; i++ {
			for j := 0; j < rv.Index(i).Len(); j++ {
				flat = reflect.AppendSlice(flat, rv.Index(i).Index(j))
			}
		}
		dims = []int32{int32(d0), int32(d1), int32(d2)}
	}
	if err := enc.Encode(flat.Interface()); err != nil {
		return BadEncodingError
	}
	return enc.WriteInt32Array(dims)
}

// variantTypeOf returns the variant type byte for an element type.
func variantTypeOf(typ reflect.Type) (byte, bool) {
	switch typ {
	case typeDateTime:
		return VariantTypeDateTime, true
	case typeGUID:
		return VariantTypeGUID, true
	case typeByteString:
		return VariantTypeByteString, true
	case typeXMLElement:
		return VariantTypeXMLElement, true
	case typeNodeID:
		return VariantTypeNodeID, true
	case typeExpandedNodeID:
		return VariantTypeExpandedNodeID, true
	case typeStatusCode:
		return VariantTypeStatusCode, true
	case typeQualifiedName:
		return VariantTypeQualifiedName, true
	case typeLocalizedText:
		return VariantTypeLocalizedText, true
	case typeExtensionObject:
		return VariantTypeExtensionObject, true
	case typeDataValue:
		return VariantTypeDataValue, true
	case typeVariant:
		return VariantTypeVariant, true
	case typeDiagnosticInfo:
		return VariantTypeDiagnosticInfo, true
	}
	switch typ.Kind() {
	case reflect.Bool:
		return VariantTypeBoolean, true
	case reflect.Int8:
		return VariantTypeSByte, true
	case reflect.Uint8:
		return VariantTypeByte, true
	case reflect.Int16:
		return VariantTypeInt16, true
	case reflect.Uint16:
		return VariantTypeUInt16, true
	case reflect.Int32:
		return VariantTypeInt32, true
	case reflect.Uint32:
		return VariantTypeUInt32, true
	case reflect.Int64:
		return VariantTypeInt64, true
	case reflect.Uint64:
		return VariantTypeUInt64, true
	case reflect.Float32:
		return VariantTypeFloat, true
	case reflect.Float64:
		return VariantTypeDouble, true
	case reflect.String:
		return VariantTypeString, true
	}
	return 0, false
}

// WriteDiagnosticInfo writes a DiagnosticInfo.
func (enc *BinaryEncoder) WriteDiagnosticInfo(value DiagnosticInfo) error {
	var b byte
	if value.SymbolicID != nil {
		b |= 1
	}
	if value.NamespaceURI != nil {
		b |= 2
	}
	if value.Locale != nil {
		b |= 8
	}
	if value.LocalizedText != nil {
		b |= 4
	}
	if value.AdditionalInfo != nil {
		b |= 16
	}
	if value.InnerStatusCode != nil {
		b |= 32
	}
	if value.InnerDiagnosticInfo != nil {
		b |= 64
	}
	if err := enc.WriteByte(b); err != nil {
		return BadEncodingError
	}
	if (b & 1) != 0 {
		if err := enc.WriteInt32(*value.SymbolicID); err != nil {
			return BadEncodingError
		}
	}
	if (b & 2) != 0 {
		if err := enc.WriteInt32(*value.NamespaceURI); err != nil {
			return BadEncodingError
		}
	}
	if (b & 8) != 0 {
		if err := enc.WriteInt32(*value.Locale); err != nil {
			return BadEncodingError
		}
	}
	if (b & 4) != 0 {
		if err := enc.WriteInt32(*value.LocalizedText); err != nil {
			return BadEncodingError
		}
	}
	if (b & 16) != 0 {
		if err := enc.WriteString(*value.AdditionalInfo); err != nil {
			return BadEncodingError
		}
	}
	if (b & 32) != 0 {
		if err := enc.WriteStatusCode(*value.InnerStatusCode); err != nil {
			return BadEncodingError
		}
	}
	if (b & 64) != 0 {
		if err := enc.WriteDiagnosticInfo(*value.InnerDiagnosticInfo); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteBooleanArray writes a bool array.
func (enc *BinaryEncoder) WriteBooleanArray(value []bool) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteBoolean(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteSByteArray writes an int8 array.
func (enc *BinaryEncoder) WriteSByteArray(value []int8) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteSByte(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteByteArray writes a byte array.
func (enc *BinaryEncoder) WriteByteArray(value []byte) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	if _, err := enc.w.Write(value); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteInt16Array writes an int16 array.
func (enc *BinaryEncoder) WriteInt16Array(value []int16) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteInt16(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteUInt16Array writes a uint16 array.
func (enc *BinaryEncoder) WriteUInt16Array(value []uint16) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteUInt16(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteInt32Array writes an int32 array.
func (enc *BinaryEncoder) WriteInt32Array(value []int32) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteInt32(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteUInt32Array writes a uint32 array.
func (enc *BinaryEncoder) WriteUInt32Array(value []uint32) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteUInt32(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteInt64Array writes an int64 array.
func (enc *BinaryEncoder) WriteInt64Array(value []int64) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteInt64(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteUInt64Array writes a uint64 array.
func (enc *BinaryEncoder) WriteUInt64Array(value []uint64) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteUInt64(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteFloatArray writes a float32 array.
func (enc *BinaryEncoder) WriteFloatArray(value []float32) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteFloat(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteDoubleArray writes a float64 array.
func (enc *BinaryEncoder) WriteDoubleArray(value []float64) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteDouble(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteStringArray writes a string array.
func (enc *BinaryEncoder) WriteStringArray(value []string) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteString(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteDateTimeArray writes a time.Time array.
func (enc *BinaryEncoder) WriteDateTimeArray(value []time.Time) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteDateTime(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteGUIDArray writes a uuid.UUID array.
func (enc *BinaryEncoder) WriteGUIDArray(value []uuid.UUID) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteGUID(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteByteStringArray writes a ByteString array.
func (enc *BinaryEncoder) WriteByteStringArray(value []ByteString) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteByteString(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteXMLElementArray writes an XMLElement array.
func (enc *BinaryEncoder) WriteXMLElementArray(value []XMLElement) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteXMLElement(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteNodeIDArray writes a NodeID array.
func (enc *BinaryEncoder) WriteNodeIDArray(value []NodeID) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteNodeID(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteExpandedNodeIDArray writes an ExpandedNodeID array.
func (enc *BinaryEncoder) WriteExpandedNodeIDArray(value []ExpandedNodeID) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteExpandedNodeID(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteStatusCodeArray writes a StatusCode array.
func (enc *BinaryEncoder) WriteStatusCodeArray(value []StatusCode) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteStatusCode(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteQualifiedNameArray writes a QualifiedName array.
func (enc *BinaryEncoder) WriteQualifiedNameArray(value []QualifiedName) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteQualifiedName(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteLocalizedTextArray writes a LocalizedText array.
func (enc *BinaryEncoder) WriteLocalizedTextArray(value []LocalizedText) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteLocalizedText(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteExtensionObjectArray writes an ExtensionObject array.
func (enc *BinaryEncoder) WriteExtensionObjectArray(value []ExtensionObject) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteExtensionObject(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteDataValueArray writes a DataValue array.
func (enc *BinaryEncoder) WriteDataValueArray(value []DataValue) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteDataValue(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteVariantArray writes a Variant array.
func (enc *BinaryEncoder) WriteVariantArray(value []Variant) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteVariant(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteDiagnosticInfoArray writes a DiagnosticInfo array.
func (enc *BinaryEncoder) WriteDiagnosticInfoArray(value []DiagnosticInfo) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	for i := range value {
		if err := enc.WriteDiagnosticInfo(value[i]); err != nil {
			return BadEncodingError
		}
	}
	return nil
}
