package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestEncodeValue_Shape(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x11}, nonceSize)
	ciphertext := bytes.Repeat([]byte{0x22}, tagSize+5)

	value := encodeValue(nonce, ciphertext)

	parts := strings.Split(value, segmentDelimiter)
	if len(parts) != 3 {
		t.Fatalf("segment count = %d, want 3", len(parts))
	}
	if parts[0] != formatVersion {
		t.Fatalf("version segment = %q, want %q", parts[0], formatVersion)
	}
	if parts[1] != base64.StdEncoding.EncodeToString(nonce) {
		t.Fatalf("nonce segment does not match standard base64 of the nonce")
	}
	if parts[2] != base64.StdEncoding.EncodeToString(ciphertext) {
		t.Fatalf("ciphertext segment does not match standard base64 of the ciphertext")
	}
}

func TestParseValue_RoundTrip(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x11}, nonceSize)
	ciphertext := bytes.Repeat([]byte{0x22}, tagSize+9)

	gotNonce, gotCiphertext, err := parseValue(encodeValue(nonce, ciphertext))
	if err != nil {
		t.Fatalf("parseValue error: %v", err)
	}
	if !bytes.Equal(gotNonce, nonce) {
		t.Fatalf("nonce mismatch after round trip")
	}
	if !bytes.Equal(gotCiphertext, ciphertext) {
		t.Fatalf("ciphertext mismatch after round trip")
	}
}

func TestParseValue_LegacyTwoSegments(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x33}, nonceSize)
	ciphertext := bytes.Repeat([]byte{0x44}, tagSize)

	legacy := base64.StdEncoding.EncodeToString(nonce) +
		segmentDelimiter +
		base64.StdEncoding.EncodeToString(ciphertext)

	gotNonce, gotCiphertext, err := parseValue(legacy)
	if err != nil {
		t.Fatalf("parseValue(legacy) error: %v", err)
	}
	if !bytes.Equal(gotNonce, nonce) || !bytes.Equal(gotCiphertext, ciphertext) {
		t.Fatalf("legacy form did not parse to the original segments")
	}
}

func TestParseValue_Rejections(t *testing.T) {
	nonceB64 := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x01}, nonceSize))
	ctB64 := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x02}, tagSize))
	shortCtB64 := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x02}, tagSize-1))

	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"plain text", "just some text"},
		{"single segment", nonceB64},
		{"four segments", "v1:" + nonceB64 + ":" + ctB64 + ":extra"},
		{"unknown version", "v2:" + nonceB64 + ":" + ctB64},
		{"bad nonce base64", "v1:@@@:" + ctB64},
		{"bad ciphertext base64", "v1:" + nonceB64 + ":@@@"},
		{"short nonce", "v1:" + base64.StdEncoding.EncodeToString([]byte{0x01}) + ":" + ctB64},
		{"ciphertext shorter than tag", "v1:" + nonceB64 + ":" + shortCtB64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := parseValue(tt.value); !errors.Is(err, ErrIntegrity) {
				t.Fatalf("parseValue(%q) error = %v, want ErrIntegrity", tt.value, err)
			}
		})
	}
}

func TestLooksEncrypted(t *testing.T) {
	nonceB64 := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x01}, nonceSize))
	ctB64 := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x02}, tagSize+3))

	if !LooksEncrypted("v1:" + nonceB64 + ":" + ctB64) {
		t.Fatalf("versioned value should look encrypted")
	}
	if !LooksEncrypted(nonceB64 + ":" + ctB64) {
		t.Fatalf("legacy value should look encrypted")
	}
	if LooksEncrypted("Grocery run") {
		t.Fatalf("plain text should not look encrypted")
	}
	if LooksEncrypted("42.50") {
		t.Fatalf("numeric string should not look encrypted")
	}
	if LooksEncrypted("") {
		t.Fatalf("empty string should not look encrypted")
	}
}
