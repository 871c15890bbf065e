// Package container implements the wire format: fixed 16-byte image and
// tile headers with bit-packed fields, magic numbers, and exact tag
// encodings, plus the errors its readers return for malformed headers.
package container

import (
	"encoding/binary"
	"errors"
)

// ImageMagic and TileMagic are the four-byte magic numbers opening the
// image head and every tile head, respectively.
const (
	ImageMagic uint32 = 0x036F6B41 // "Ako\x03"
	TileMagic  uint32 = 0x03546B41 // "AkT\x03"
)

// ImageHeadSize and TileHeadSize are the fixed, wire-exact sizes (bytes) of
// each header.
const (
	ImageHeadSize = 16
	TileHeadSize  = 16
)

// ColorTag, WaveletTag, WrapTag and CompressionTag are the exact 2-bit
// wire tags for each setting, matching the container's tag table.
type ColorTag uint8
type WaveletTag uint8
type WrapTag uint8
type CompressionTag uint8

const (
	ColorYCoCg ColorTag = iota
	ColorSubtractG
	ColorNone
)

const (
	WaveletDD137 WaveletTag = iota
	WaveletCDF53
	WaveletHaar
	WaveletNone
)

const (
	WrapClamp WrapTag = iota
	WrapMirror
	WrapRepeat
	WrapZero
)

const (
	CompressionKagari CompressionTag = iota
	CompressionManbavaran
	CompressionNone
)

// ErrTruncatedImageHead, ErrTruncatedTileHead, ErrNotAnAkoFile and
// ErrInvalidTileHead surface the container's malformed-wire-format cases.
var (
	ErrTruncatedImageHead = errors.New("container: truncated image head")
	ErrTruncatedTileHead  = errors.New("container: truncated tile head")
	ErrNotAnAkoFile       = errors.New("container: magic mismatch, not an Ako file")
	ErrInvalidTileHead    = errors.New("container: tile head magic mismatch")
)

// ImageHead is the 16-byte header opening every container.
type ImageHead struct {
	Width, Height     int
	Depth, Channels   int
	Color             ColorTag
	Wavelet           WaveletTag
	Wrap              WrapTag
	Compression       CompressionTag
	TilesDimensionLog int // 0 means "no tiling"
}

// TilesDimension returns the tile side length, or 0 when the image is
// encoded as a single tile.
func (h ImageHead) TilesDimension() int {
	if h.TilesDimensionLog == 0 {
		return 0
	}
	return 1 << uint(h.TilesDimensionLog)
}

// WriteImageHead packs h into a fresh ImageHeadSize-byte buffer.
func WriteImageHead(h ImageHead) []byte {
	buf := make([]byte, ImageHeadSize)
	binary.LittleEndian.PutUint32(buf[0:4], ImageMagic)

	a := uint32(h.Width-1)<<7 | uint32(h.Depth-1)<<2 | uint32(h.Color)
	b := uint32(h.Height-1)<<7 | uint32(h.TilesDimensionLog)<<2 | uint32(h.Wavelet)
	c := uint32(h.Channels-1)<<7 | uint32(h.Wrap)<<5 | uint32(h.Compression)<<3

	binary.LittleEndian.PutUint32(buf[4:8], a)
	binary.LittleEndian.PutUint32(buf[8:12], b)
	binary.LittleEndian.PutUint32(buf[12:16], c)
	return buf
}

// ReadImageHead parses an ImageHeadSize-byte buffer.
func ReadImageHead(buf []byte) (ImageHead, error) {
	if len(buf) < ImageHeadSize {
		return ImageHead{}, ErrTruncatedImageHead
	}
	if binary.LittleEndian.Uint32(buf[0:4]) != ImageMagic {
		return ImageHead{}, ErrNotAnAkoFile
	}

	a := binary.LittleEndian.Uint32(buf[4:8])
	b := binary.LittleEndian.Uint32(buf[8:12])
	c := binary.LittleEndian.Uint32(buf[12:16])

	return ImageHead{
		Width:             int(a>>7) + 1,
		Depth:             int((a>>2)&0xF) + 1,
		Color:             ColorTag(a & 0x3),
		Height:            int(b>>7) + 1,
		TilesDimensionLog: int((b >> 2) & 0x1F),
		Wavelet:           WaveletTag(b & 0x3),
		Channels:          int(c>>7) + 1,
		Wrap:              WrapTag((c >> 5) & 0x3),
		Compression:       CompressionTag((c >> 3) & 0x3),
	}, nil
}

// TileHead is the 16-byte header preceding each tile payload.
type TileHead struct {
	No              int
	CompressedSize  int
	Compression     CompressionTag
}

// WriteTileHead packs h into a fresh TileHeadSize-byte buffer.
func WriteTileHead(h TileHead) []byte {
	buf := make([]byte, TileHeadSize)
	binary.LittleEndian.PutUint32(buf[0:4], TileMagic)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(h.No))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(h.CompressedSize))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(h.Compression)<<30)
	return buf
}

// ReadTileHead parses a TileHeadSize-byte buffer.
func ReadTileHead(buf []byte) (TileHead, error) {
	if len(buf) < TileHeadSize {
		return TileHead{}, ErrTruncatedTileHead
	}
	if binary.LittleEndian.Uint32(buf[0:4]) != TileMagic {
		return TileHead{}, ErrInvalidTileHead
	}
	tags := binary.LittleEndian.Uint32(buf[12:16])
	return TileHead{
		No:             int(binary.LittleEndian.Uint32(buf[4:8])),
		CompressedSize: int(binary.LittleEndian.Uint32(buf[8:12])),
		Compression:    CompressionTag(tags >> 30),
	}, nil
}
