package wire

import "testing"

func TestVarintRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteVarint(1, 300)
	r := NewReader(w.Bytes())
	f, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if f.Number != 1 || f.Type != Varint || f.Varint != 300 {
		t.Errorf("field = %+v, want {1 Varint 300 ...}", f)
	}
}

func TestZigzagRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 1000, -1000, -9223372036854775808} {
		w := NewWriter()
		w.WriteZigzag(1, v)
		r := NewReader(w.Bytes())
		f, err := r.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		got := ZigzagToInt64(f.Varint)
		if got != v {
			t.Errorf("zigzag round trip of %d = %d", v, got)
		}
	}
}

func TestFixed64RoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteFixed64(2, 0x4045000000000000) // float64(42.0) bit pattern
	r := NewReader(w.Bytes())
	f, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if f.Type != Fixed64 || f.Fixed != 0x4045000000000000 {
		t.Errorf("field = %+v", f)
	}
}

func TestBytesAndStringRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteString(3, "hello")
	w.WriteBytes(4, []byte{1, 2, 3})
	r := NewReader(w.Bytes())

	f1, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if string(f1.Bytes) != "hello" {
		t.Errorf("f1.Bytes = %q, want hello", f1.Bytes)
	}

	f2, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if len(f2.Bytes) != 3 || f2.Bytes[0] != 1 || f2.Bytes[2] != 3 {
		t.Errorf("f2.Bytes = %v", f2.Bytes)
	}
}

func TestMultipleFieldsAndEOF(t *testing.T) {
	w := NewWriter()
	w.WriteVarint(1, 7)
	w.WriteBool(2, true)
	w.WriteString(3, "x")

	r := NewReader(w.Bytes())
	var seen []int
	for {
		f, err := r.Next()
		if err != nil {
			break
		}
		seen = append(seen, f.Number)
	}
	if len(seen) != 3 || seen[0] != 1 || seen[1] != 2 || seen[2] != 3 {
		t.Errorf("seen = %v, want [1 2 3]", seen)
	}
}

func TestNestedMessage(t *testing.T) {
	inner := NewWriter()
	inner.WriteString(1, "child")

	outer := NewWriter()
	outer.WriteMessage(5, inner.Bytes())

	r := NewReader(outer.Bytes())
	f, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	innerR := NewReader(f.Bytes)
	innerF, err := innerR.Next()
	if err != nil {
		t.Fatalf("inner Next: %v", err)
	}
	if string(innerF.Bytes) != "child" {
		t.Errorf("innerF.Bytes = %q, want child", innerF.Bytes)
	}
}

func TestTruncatedBytesFieldFails(t *testing.T) {
	w := NewWriter()
	w.WriteString(1, "hello")
	corrupted := w.Bytes()[:len(w.Bytes())-2]
	r := NewReader(corrupted)
	if _, err := r.Next(); err == nil {
		t.Fatal("Next on truncated bytes field succeeded, want error")
	}
}
