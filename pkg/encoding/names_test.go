package encoding

import "testing"

func TestDecodeName(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"ascii", []byte("cube"), "cube"},
		{"utf8", []byte("큐브"), "큐브"},
		{"euckr", []byte{0xC5, 0xA5, 0xBA, 0xEA}, "큐브"},
		{"null terminated", []byte("teapot\x00\x00junk"), "teapot"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeName(tt.in); got != tt.want {
				t.Errorf("DecodeName(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeNameRoundTrip(t *testing.T) {
	enc := EncodeName("큐브")
	if string(enc) == "큐브" {
		t.Fatal("EncodeName returned UTF-8 input unchanged")
	}
	if got := DecodeName(enc); got != "큐브" {
		t.Errorf("round trip = %q, want %q", got, "큐브")
	}
}
