package camera

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

var jpegExifHeader = []byte("Exif\x00\x00")

const (
	markerSOI  = 0xd8
	markerAPP1 = 0xe1
	markerSOS  = 0xda
	markerEOI  = 0xd9
)

// insertSegment writes a marker segment directly after SOI.
func insertSegment(data []byte, marker byte, payload []byte) ([]byte, error) {
	if len(data) < 2 || data[0] != 0xff || data[1] != markerSOI {
		return nil, fmt.Errorf("invalid JPEG SOI")
	}
	segLen := len(payload) + 2
	if segLen > 0xffff {
		return nil, fmt.Errorf("JPEG segment too long: %d bytes", segLen)
	}

	var buf bytes.Buffer
	buf.Grow(len(data) + segLen + 2)
	buf.Write(data[:2])
	buf.Write([]byte{0xff, marker})
	_ = binary.Write(&buf, binary.BigEndian, uint16(segLen))
	buf.Write(payload)
	buf.Write(data[2:])
	return buf.Bytes(), nil
}

// jpegMarkers lists segment markers up to the start of scan.
func jpegMarkers(data []byte) ([]byte, error) {
	if len(data) < 2 || data[0] != 0xff || data[1] != markerSOI {
		return nil, fmt.Errorf("invalid JPEG SOI")
	}
	markers := []byte{markerSOI}
	pos := 2
	for pos+1 < len(data) {
		if data[pos] != 0xff {
			return nil, fmt.Errorf("expected marker at offset %d", pos)
		}
		marker := data[pos+1]
		pos += 2
		if marker == 0xff {
			pos--
			continue
		}
		markers = append(markers, marker)
		if marker == markerSOS || marker == markerEOI {
			return markers, nil
		}
		if marker == 0x01 || (marker >= 0xd0 && marker <= 0xd7) {
			continue
		}
		if pos+2 > len(data) {
			return nil, fmt.Errorf("truncated JPEG segment length")
		}
		segLen := int(binary.BigEndian.Uint16(data[pos : pos+2]))
		if segLen < 2 {
			return nil, fmt.Errorf("invalid JPEG segment length")
		}
		pos += segLen
	}
	return markers, nil
}
