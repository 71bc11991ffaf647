// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package tdc

// Recognized header_version values. unk1 and unk5 change width by version;
// every other fixed-header field has the same width across all three.
const (
	HeaderV1 uint16 = 0x0100 // unk1: 2 bytes, unk5: 4 bytes
	HeaderV2 uint16 = 0x0200 // unk1: 4 bytes, unk5: 4 bytes
	HeaderV3 uint16 = 0x0300 // unk1: 4 bytes, unk5: 8 bytes
)

var magic = [4]byte{'T', 'P', 'D', 'C'}

func unk1Width(version uint16) int {
	if version == HeaderV1 {
		return 2
	}
	return 4
}

func unk5Width(version uint16) int {
	if version == HeaderV3 {
		return 8
	}
	return 4
}

// ThingEntry is one (lower, upper) u16 pair from the header's thing table.
type ThingEntry struct {
	Lower uint16
	Upper uint16
}

// Header holds the fixed fields of a TDC file header, excluding the magic,
// header_version, and data_offset carried directly on Container. Unk1 and
// Unk5 are opaque passthrough values; their on-wire width is derived from
// the container's header_version (see unk1Width, unk5Width).
type Header struct {
	Unk0            uint16
	Unk1            uint64
	CaptureSaveTime uint32
	DataVersion     uint16
	Unk3            uint32
	Unk4            uint32
	Unk5            uint64
	Things          []ThingEntry
}

// fixedHeaderSize returns the byte length of the fixed header fields for
// the given version, not including the thing table or the leading
// magic/header_version/data_offset fields (those leading fields are
// read/written by ReadContainer/WriteContainer, not readHeader/writeHeader).
func fixedHeaderSize(version uint16) int {
	// unk0(2) + unk1 + capture_save_time(4) + data_version(2) + unk3(4) +
	// unk4(4) + unk5 + num_thing(2)
	return 2 + unk1Width(version) + 4 + 2 + 4 + 4 + unk5Width(version) + 2
}

func readHeader(cur *cursor, version uint16) (Header, error) {
	var h Header

	u0, err := cur.readU16()
	if err != nil {
		return h, err
	}
	h.Unk0 = u0

	u1, err := cur.readUintWidth(unk1Width(version))
	if err != nil {
		return h, err
	}
	h.Unk1 = u1

	cst, err := cur.readU32()
	if err != nil {
		return h, err
	}
	h.CaptureSaveTime = cst

	dv, err := cur.readU16()
	if err != nil {
		return h, err
	}
	h.DataVersion = dv

	u3, err := cur.readU32()
	if err != nil {
		return h, err
	}
	h.Unk3 = u3

	u4, err := cur.readU32()
	if err != nil {
		return h, err
	}
	h.Unk4 = u4

	u5, err := cur.readUintWidth(unk5Width(version))
	if err != nil {
		return h, err
	}
	h.Unk5 = u5

	numThing, err := cur.readU16()
	if err != nil {
		return h, err
	}

	if numThing > 0 {
		h.Things = make([]ThingEntry, numThing)
	}
	for i := range h.Things {
		lower, err := cur.readU16()
		if err != nil {
			return h, err
		}
		upper, err := cur.readU16()
		if err != nil {
			return h, err
		}
		h.Things[i] = ThingEntry{Lower: lower, Upper: upper}
	}

	return h, nil
}

func writeHeader(buf []byte, version uint16, h Header) []byte {
	buf = appendU16(buf, h.Unk0)
	buf = appendUintWidth(buf, h.Unk1, unk1Width(version))
	buf = appendU32(buf, h.CaptureSaveTime)
	buf = appendU16(buf, h.DataVersion)
	buf = appendU32(buf, h.Unk3)
	buf = appendU32(buf, h.Unk4)
	buf = appendUintWidth(buf, h.Unk5, unk5Width(version))
	buf = appendU16(buf, uint16(len(h.Things)))
	for _, t := range h.Things {
		buf = appendU16(buf, t.Lower)
		buf = appendU16(buf, t.Upper)
	}
	return buf
}
