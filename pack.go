package cbor

import (
	"github.com/puzpuzpuz/xsync/v4"
)

// pack.go implements a small format-string interpreter over the primitive
// layer, mirroring the original source's cbor_pack/cbor_unpack entry
// points. Each directive consumes one argument and reads or writes the
// corresponding CBOR item. A parsed format string is cached in a
// concurrent map so that a hot call site paying to parse "qqq?" once does
// not pay again on every call, the same role xsync.Map plays for the
// reflect.Type -> size cache in the teacher codec this package grew out
// of.
//
// Supported directives:
//
//	q   int64    (CBOR integer, either sign)
//	Q   uint64   (CBOR unsigned integer)
//	?   bool     (CBOR boolean)
//
// Unknown directive bytes fail with ErrFmt. The interpreter is
// intentionally small; callers needing strings, bytes, floats, arrays, or
// tags should call the corresponding Stream method directly, or extend
// the directive constants and the switches in compileFormat, Pack and
// Unpack below.
type directive byte

const (
	directiveInt64  directive = 'q'
	directiveUint64 directive = 'Q'
	directiveBool   directive = '?'
)

// compiledFormat is the parsed form of a format string: just its
// directive bytes, validated once.
type compiledFormat struct {
	directives []directive
}

var formatCache = xsync.NewMap[string, *compiledFormat]()

func compileFormat(format string) (*compiledFormat, error) {
	if cf, ok := formatCache.Load(format); ok {
		return cf, nil
	}
	cf := &compiledFormat{directives: make([]directive, 0, len(format))}
	for i := 0; i < len(format); i++ {
		d := directive(format[i])
		switch d {
		case directiveInt64, directiveUint64, directiveBool:
			cf.directives = append(cf.directives, d)
		default:
			return nil, ErrFmt
		}
	}
	formatCache.Store(format, cf)
	return cf, nil
}

// Pack writes args to s according to format, one CBOR item per directive.
// len(args) must equal the number of directives in format.
func (s *Stream) Pack(format string, args ...any) error {
	cf, err := compileFormat(format)
	if err != nil {
		return err
	}
	if len(args) != len(cf.directives) {
		return ErrFmt
	}
	for i, d := range cf.directives {
		switch d {
		case directiveInt64:
			v, ok := args[i].(int64)
			if !ok {
				return ErrCantConvertType
			}
			if err := s.WriteInt(v); err != nil {
				return err
			}
		case directiveUint64:
			v, ok := args[i].(uint64)
			if !ok {
				return ErrCantConvertType
			}
			if err := s.WriteUint(v); err != nil {
				return err
			}
		case directiveBool:
			v, ok := args[i].(bool)
			if !ok {
				return ErrCantConvertType
			}
			if err := s.WriteBool(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Unpack reads from s into the pointers in out according to format, one
// CBOR item per directive. Each element of out must be a pointer of the
// type the corresponding directive produces (*int64, *uint64, or *bool).
func (s *Stream) Unpack(format string, out ...any) error {
	cf, err := compileFormat(format)
	if err != nil {
		return err
	}
	if len(out) != len(cf.directives) {
		return ErrFmt
	}
	for i, d := range cf.directives {
		switch d {
		case directiveInt64:
			p, ok := out[i].(*int64)
			if !ok {
				return ErrCantConvertType
			}
			v, err := s.ReadInt()
			if err != nil {
				return err
			}
			*p = v
		case directiveUint64:
			p, ok := out[i].(*uint64)
			if !ok {
				return ErrCantConvertType
			}
			v, err := s.ReadUint()
			if err != nil {
				return err
			}
			*p = v
		case directiveBool:
			p, ok := out[i].(*bool)
			if !ok {
				return ErrCantConvertType
			}
			v, err := s.ReadBool()
			if err != nil {
				return err
			}
			*p = v
		}
	}
	return nil
}
