// Package encoding implements the bit-level primitives of the loq payload:
// sign-magnitude packing and unpacking of fixed-width signed integers at
// arbitrary bit offsets, and derivation of the uniform bit width an array
// needs once scaled.
//
// The packer writes values LSB-first as magnitude bits followed by a single
// sign bit. Writing only ever sets bits, so destination buffers must start
// zero-filled. There is no retained cursor state: callers pass the current
// bit position in and get the advanced position back, which keeps the
// bitstream strictly serialized in array order while the surrounding numeric
// work runs in vector lanes.
package encoding
