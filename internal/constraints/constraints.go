// Package constraints provides constraints for various types.
package constraints

// Byteseq represents a generic UTF-8 byte string.
type Byteseq interface {
	~string | ~[]byte
}

// Integer is any signed or unsigned integer type, including named ones
// such as enumeration types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
