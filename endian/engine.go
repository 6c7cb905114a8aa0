// Package endian provides byte order utilities for binary encoding and decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from the standard
// encoding/binary package into a single EndianEngine interface so that header
// serialization code can both write into fixed slices and append to growing
// buffers through one value.
//
// The loq payload format is little-endian, so most callers only ever need
// GetLittleEndianEngine:
//
//	engine := endian.GetLittleEndianEngine()
//	engine.PutUint64(buf[7:15], uint64(scale))
//
// All functions and returned engines are immutable, stateless, and safe for
// concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian, making it fully
// compatible with existing code that expects a binary.ByteOrder.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. On a little-endian host the LSB (0x00) is stored first,
	// on a big-endian host the MSB (0x01) is.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host stores integers little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine used by the loq
// payload format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
