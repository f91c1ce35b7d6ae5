package crc8

import "testing"

// The "123456789" check value for CRC-8/SMBUS (poly 0x07, init 0x00,
// no reflection, no xorout) is the standard catalogue check value 0xF4.
func TestBytesCheckValue(t *testing.T) {
	got := Bytes(0, []byte("123456789"))
	if got != 0xF4 {
		t.Errorf("Bytes(0, \"123456789\") = %#x, want 0xf4", got)
	}
}

func TestByteIdentity(t *testing.T) {
	if got := Byte(0, 0); got != 0 {
		t.Errorf("Byte(0, 0) = %#x, want 0", got)
	}
}

func TestUint32MatchesLittleEndianBytes(t *testing.T) {
	var v uint32 = 0x01020304
	want := Bytes(0x55, []byte{0x04, 0x03, 0x02, 0x01})
	if got := Uint32(0x55, v); got != want {
		t.Errorf("Uint32 = %#x, want %#x", got, want)
	}
}

func TestUint64MatchesLittleEndianBytes(t *testing.T) {
	var v uint64 = 0x0102030405060708
	want := Bytes(0x12, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01})
	if got := Uint64(0x12, v); got != want {
		t.Errorf("Uint64 = %#x, want %#x", got, want)
	}
}

func TestInt64MatchesUint64(t *testing.T) {
	var v int64 = -1
	if got, want := Int64(7, v), Uint64(7, uint64(v)); got != want {
		t.Errorf("Int64 = %#x, want %#x", got, want)
	}
}

func TestFloat64RoundTripsBits(t *testing.T) {
	a := Float64(3, 3.14159)
	b := Float64(3, 3.14159)
	if a != b {
		t.Errorf("Float64 not deterministic: %#x vs %#x", a, b)
	}
}
