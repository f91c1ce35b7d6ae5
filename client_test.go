package tablestore

import "testing"

func TestCompressIfLargeRespectsThreshold(t *testing.T) {
	c := &Client{cfg: Config{CompressionThresholdBytes: 1024}}
	if c.compressIfLarge(make([]byte, 100)) {
		t.Fatal("expected no compression below the threshold")
	}
	if !c.compressIfLarge(make([]byte, 1024)) {
		t.Fatal("expected compression at the threshold")
	}
}

func TestCompressIfLargeDisabledByDefault(t *testing.T) {
	c := &Client{}
	if c.compressIfLarge(make([]byte, 1<<20)) {
		t.Fatal("expected compression disabled when CompressionThresholdBytes is zero")
	}
}
