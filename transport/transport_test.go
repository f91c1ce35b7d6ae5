package transport

import (
	"testing"
	"time"

	"github.com/go-tablestore/tablestore/opcode"
)

// TestCanonicalStringMatchesFixture is scenario S4 from spec §8.3.
func TestCanonicalStringMatchesFixture(t *testing.T) {
	req := &Request{
		Method:    "POST",
		Operation: opcode.GetRow,
		Headers: map[string]string{
			"x-ots-apiversion":  "2015-12-31",
			"x-ots-date":        "2024-01-02T03:04:05.678Z",
			"x-ots-accesskeyid": "AKID",
			"x-ots-instancename": "inst",
			"x-ots-contentmd5":  "Zm9v",
		},
	}
	want := "/GetRow\nPOST\n\nx-ots-accesskeyid:AKID\nx-ots-apiversion:2015-12-31\nx-ots-contentmd5:Zm9v\nx-ots-date:2024-01-02T03:04:05.678Z\nx-ots-instancename:inst\n"
	if got := req.CanonicalString(); got != want {
		t.Errorf("CanonicalString() = %q, want %q", got, want)
	}
}

func TestCanonicalStringIsOrderIndependent(t *testing.T) {
	headerSets := []map[string]string{
		{"x-ots-date": "d", "x-ots-apiversion": "v", "x-ots-accesskeyid": "a"},
		{"x-ots-accesskeyid": "a", "x-ots-date": "d", "x-ots-apiversion": "v"},
		{"x-ots-apiversion": "v", "x-ots-accesskeyid": "a", "x-ots-date": "d"},
	}
	var first string
	for i, headers := range headerSets {
		req := &Request{Operation: opcode.GetRow, Method: "POST", Headers: headers}
		got := req.CanonicalString()
		if i == 0 {
			first = got
			continue
		}
		if got != first {
			t.Errorf("insertion order %d produced a different canonical string: %q vs %q", i, got, first)
		}
	}
}

func TestCanonicalStringExcludesSignature(t *testing.T) {
	req := &Request{
		Operation: opcode.GetRow,
		Method:    "POST",
		Headers: map[string]string{
			"x-ots-apiversion": "v",
			"x-ots-signature":  "should-not-appear",
		},
	}
	got := req.CanonicalString()
	if want := "/GetRow\nPOST\n\nx-ots-apiversion:v\n"; got != want {
		t.Errorf("CanonicalString() = %q, want %q", got, want)
	}
}

func TestParseEndpoint(t *testing.T) {
	instance, region, err := ParseEndpoint("https://my-instance.cn-hangzhou.ots.aliyuncs.com")
	if err != nil {
		t.Fatalf("ParseEndpoint: %v", err)
	}
	if instance != "my-instance" || region != "cn-hangzhou" {
		t.Errorf("ParseEndpoint() = (%q, %q), want (my-instance, cn-hangzhou)", instance, region)
	}
}

func TestParseEndpointRejectsTooFewSegments(t *testing.T) {
	if _, _, err := ParseEndpoint("https://localhost"); err == nil {
		t.Fatal("expected an error for an endpoint with too few segments")
	}
}

func TestSignSetsSignatureHeader(t *testing.T) {
	req := &Request{
		Operation: opcode.GetRow,
		Method:    "POST",
		Headers: map[string]string{
			"x-ots-apiversion": "2015-12-31",
		},
	}
	req.Sign("secret")
	if req.Headers["x-ots-signature"] == "" {
		t.Fatal("Sign did not set x-ots-signature")
	}
}

func TestNewRequestCompressesBodyWhenRequested(t *testing.T) {
	body := []byte("hello world, this is the request body")
	req := NewRequest(opcode.GetRow, body, Options{Compressed: true})
	if len(req.Body) == 0 {
		t.Fatal("expected a non-empty compressed body")
	}
	if string(req.Body) == string(body) {
		t.Fatal("expected the body to be transformed by compression")
	}
}

func TestNewRequestSetsContentEncodingHeaderWhenCompressed(t *testing.T) {
	req := NewRequest(opcode.GetRow, []byte("payload"), Options{Compressed: true})
	req.PrepareHeaders(Credentials{AccessKeyID: "ak"}, "inst", time.Now())
	if req.Headers["Content-Encoding"] != zstdEncoding {
		t.Fatalf("Content-Encoding = %q, want %q", req.Headers["Content-Encoding"], zstdEncoding)
	}
}

func TestNewRequestLeavesBodyUncompressedByDefault(t *testing.T) {
	body := []byte("payload")
	req := NewRequest(opcode.GetRow, body, Options{})
	if string(req.Body) != string(body) {
		t.Fatal("expected the body to be left untouched without Options.Compressed")
	}
	req.PrepareHeaders(Credentials{AccessKeyID: "ak"}, "inst", time.Now())
	if _, ok := req.Headers["Content-Encoding"]; ok {
		t.Fatal("did not expect a Content-Encoding header without Options.Compressed")
	}
}
