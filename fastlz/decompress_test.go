package fastlz

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex.DecodeString(%q): %v", s, err)
	}
	return b
}

// Decoder scenarios from spec §8.
func TestDecompress_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []byte
	}{
		{
			name: "short-header-literal-32",
			in:   "1f000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
			want: mustHex(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"),
		},
		{
			name: "header-literal-plus-literal-run",
			in:   "000102030405060708090a0b0c0d",
			want: mustHex(t, "010304050708090a0b0c0d"),
		},
		{
			name: "short-match-length-extension",
			in:   "0000e0ff00",
			want: bytes.Repeat([]byte{0}, 265),
		},
		{
			name: "long-variant-overlap-rle",
			in:   "246162636465e00104",
			want: []byte("abcdeabcdeabcde"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decompress(mustHex(t, tc.in), nil)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Fatalf("Decompress() = % x, want % x", got, tc.want)
			}
		})
	}
}

func TestDecompress_UnsupportedHeader(t *testing.T) {
	_, err := Decompress(mustHex(t, "e000"), nil)
	if !errors.Is(err, ErrUnsupportedHeader) {
		t.Fatalf("expected ErrUnsupportedHeader, got %v", err)
	}
	var derr *DecompressionError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DecompressionError, got %T", err)
	}
}

func TestDecompress_LongVariantOffsetExtensionUnderflow(t *testing.T) {
	_, err := Decompress(mustHex(t, "20003fff"), nil)
	if !errors.Is(err, ErrInputUnderflow) {
		t.Fatalf("expected ErrInputUnderflow, got %v", err)
	}
}

func TestDecompress_InputUnderflow(t *testing.T) {
	cases := []string{
		"00",     // header literal declares 1 byte but none follow
		"000020", // a second control byte that itself needs a trailing byte
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			_, err := Decompress(mustHex(t, in), nil)
			if !errors.Is(err, ErrInputUnderflow) {
				t.Fatalf("Decompress(%q): expected ErrInputUnderflow, got %v", in, err)
			}
		})
	}
}

func TestDecompress_InvalidBackreference(t *testing.T) {
	_, err := Decompress(mustHex(t, "00002001"), nil)
	if !errors.Is(err, ErrInvalidBackreference) {
		t.Fatalf("expected ErrInvalidBackreference, got %v", err)
	}
}

func TestDecompress_ReturnsPartialOutputOnError(t *testing.T) {
	// Header literal of 1 byte ("00" 0xAA), then an invalid backreference.
	// The literal byte must still come back alongside the error so callers
	// (e.g. tdc's failure-diagnostic dump) can capture what was decoded so
	// far.
	got, err := Decompress(mustHex(t, "00aa2001"), nil)
	if !errors.Is(err, ErrInvalidBackreference) {
		t.Fatalf("expected ErrInvalidBackreference, got %v", err)
	}
	if !bytes.Equal(got, []byte{0xaa}) {
		t.Fatalf("partial output = % x, want %02x", got, 0xaa)
	}
}

func TestDecompress_EmptyInput(t *testing.T) {
	got, err := Decompress(nil, nil)
	if err != nil {
		t.Fatalf("Decompress(nil): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Decompress(nil) = % x, want empty", got)
	}
}

func TestDecompress_TrailingMatchIntoRandomData(t *testing.T) {
	// Mirrors spec §8's randomized-data decoder test: 32-byte literal
	// chunks covering 16 KiB (a fixed repeating pattern stands in for the
	// random bytes), followed by a short-variant match copying back
	// 8191+1 bytes for 264 bytes.
	random := bytes.Repeat([]byte{0xAA, 0x55, 0x10, 0x20}, 4096) // 16 KiB
	compressed := []byte{0x1f}
	compressed = append(compressed, random[:32]...)
	rest := random[32:]
	for len(rest) > 0 {
		compressed = append(compressed, 0x1f)
		compressed = append(compressed, rest[:32]...)
		rest = rest[32:]
	}
	compressed = append(compressed, 0xff, 0xff, 0xff)

	got, err := Decompress(compressed, nil)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}

	expected := append(append([]byte{}, random...), random[len(random)-8192:len(random)-8192+264]...)
	if !bytes.Equal(got, expected) {
		t.Fatalf("Decompress() length = %d, want %d", len(got), len(expected))
	}
}

func TestDecompress_OutputTooLarge(t *testing.T) {
	in := mustHex(t, "1f")
	in = append(in, bytes.Repeat([]byte{0}, 32)...)
	opts := &DecompressOptions{MaxOutputSize: 16}
	_, err := Decompress(in, opts)
	if !errors.Is(err, ErrOutputTooLarge) {
		t.Fatalf("expected ErrOutputTooLarge, got %v", err)
	}
}
