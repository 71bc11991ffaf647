package tdc

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestContainer_RoundTrip is the container scenario from spec §8:
// header_version=0x0200, data_offset=0x80, two random 4 KiB blocks.
func TestContainer_RoundTrip(t *testing.T) {
	raw := make([][]byte, 2)
	for i := range raw {
		raw[i] = make([]byte, 4096)
		if _, err := rand.Read(raw[i]); err != nil {
			t.Fatalf("rand.Read: %v", err)
		}
	}

	c := &Container{
		Version:    HeaderV2,
		DataOffset: 0x80,
		Header: Header{
			Unk0:            1,
			Unk1:            2,
			CaptureSaveTime: 1_690_000_000,
			DataVersion:     3,
			Unk3:            4,
			Unk4:            5,
			Unk5:            6,
			Things:          []ThingEntry{{Lower: 10, Upper: 20}},
		},
	}

	var buf bytes.Buffer
	if err := c.WriteContainer(&buf, raw, nil); err != nil {
		t.Fatalf("WriteContainer: %v", err)
	}

	got, err := ReadContainer(&buf, nil)
	if err != nil {
		t.Fatalf("ReadContainer: %v", err)
	}

	if diff := cmp.Diff(c.Header, got.Header); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
	if got.Version != c.Version || got.DataOffset != c.DataOffset {
		t.Fatalf("got version=%#x dataOffset=%#x, want version=%#x dataOffset=%#x",
			got.Version, got.DataOffset, c.Version, c.DataOffset)
	}
	if len(got.Blocks) != len(raw) {
		t.Fatalf("got %d blocks, want %d", len(got.Blocks), len(raw))
	}

	for i, want := range raw {
		decoded, err := got.DecodeBlock(i, nil)
		if err != nil {
			t.Fatalf("DecodeBlock(%d): %v", i, err)
		}
		if !bytes.Equal(decoded, want) {
			t.Fatalf("block %d round-trip mismatch", i)
		}
	}
}

func TestReadContainer_BadMagic(t *testing.T) {
	_, err := ReadContainer(bytes.NewReader([]byte("XXXX\x00\x02\x00\x00\x00\x00")), nil)
	if !errors.Is(err, ErrBadMagic) {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}
}

func TestReadContainer_UnsupportedVersion(t *testing.T) {
	data := append([]byte{'T', 'P', 'D', 'C'}, 0x99, 0x09) // header_version = 0x0999
	_, err := ReadContainer(bytes.NewReader(data), nil)
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestWriteContainer_NegativePadding(t *testing.T) {
	c := &Container{
		Version:    HeaderV1,
		DataOffset: 4, // too small to fit magic + version + data_offset alone
		Header:     Header{},
	}
	var buf bytes.Buffer
	err := c.WriteContainer(&buf, nil, nil)
	if !errors.Is(err, ErrNegativePadding) {
		t.Fatalf("expected ErrNegativePadding on write, got %v", err)
	}
}

func TestContainer_DecodeBlock_CrcMismatch(t *testing.T) {
	c := &Container{Version: HeaderV1, DataOffset: 0x80}
	var buf bytes.Buffer
	if err := c.WriteContainer(&buf, [][]byte{[]byte("hello")}, nil); err != nil {
		t.Fatalf("WriteContainer: %v", err)
	}

	got, err := ReadContainer(&buf, nil)
	if err != nil {
		t.Fatalf("ReadContainer: %v", err)
	}
	got.Blocks[0].CRC32 ^= 0xFFFFFFFF

	_, err = got.DecodeBlock(0, nil)
	if !errors.Is(err, ErrCrcMismatch) {
		t.Fatalf("expected ErrCrcMismatch, got %v", err)
	}
}

func TestContainer_DecodeBlock_InvalidIndex(t *testing.T) {
	c := &Container{}
	if _, err := c.DecodeBlock(0, nil); !errors.Is(err, ErrInvalidBlockIndex) {
		t.Fatalf("expected ErrInvalidBlockIndex, got %v", err)
	}
}

func TestContainer_RawBlocks(t *testing.T) {
	c := &Container{Version: HeaderV1, DataOffset: 0x80}
	var buf bytes.Buffer
	if err := c.WriteContainer(&buf, [][]byte{[]byte("a"), []byte("b")}, nil); err != nil {
		t.Fatalf("WriteContainer: %v", err)
	}
	got, err := ReadContainer(&buf, nil)
	if err != nil {
		t.Fatalf("ReadContainer: %v", err)
	}
	if len(got.RawBlocks()) != 2 {
		t.Fatalf("RawBlocks() returned %d entries, want 2", len(got.RawBlocks()))
	}
}
