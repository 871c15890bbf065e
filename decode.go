package ako

import (
	"encoding/binary"
	"math"

	"github.com/baAlex/ako-go/internal/bio"
	"github.com/baAlex/ako-go/internal/colortransform"
	"github.com/baAlex/ako-go/internal/container"
	"github.com/baAlex/ako-go/internal/kagari"
	"github.com/baAlex/ako-go/internal/lift"
	"github.com/baAlex/ako-go/internal/rans"
	"github.com/baAlex/ako-go/internal/tile"
	"github.com/baAlex/ako-go/internal/wavelet"
)

// Decode parses an Ako container and reconstructs the raster it encodes,
// returning one uint16 per interleaved sample (regardless of depth).
func Decode(callbacks Callbacks, input []byte) (output []uint16, width, height, channels, depth int, settings Settings, status Status) {
	head, err := container.ReadImageHead(input)
	if err != nil {
		return nil, 0, 0, 0, 0, Settings{}, mapContainerError(err)
	}

	width, height, channels, depth = head.Width, head.Height, head.Channels, head.Depth
	settings = settingsFromHead(head)

	if (head.Color == container.ColorYCoCg || head.Color == container.ColorSubtractG) && channels < 3 {
		return nil, 0, 0, 0, 0, Settings{}, InvalidColor
	}

	output = make([]uint16, width*height*channels)
	cursor := container.ImageHeadSize

	tilesNo := tile.TilesNo(head.TilesDimension(), width, height)
	for t := 0; t < tilesNo; t++ {
		if cursor+container.TileHeadSize > len(input) {
			return nil, 0, 0, 0, 0, Settings{}, TruncatedTileHead
		}
		th, err := container.ReadTileHead(input[cursor:])
		if err != nil {
			return nil, 0, 0, 0, 0, Settings{}, mapContainerError(err)
		}
		cursor += container.TileHeadSize

		if cursor+th.CompressedSize > len(input) {
			return nil, 0, 0, 0, 0, Settings{}, TruncatedTileData
		}
		payload := input[cursor : cursor+th.CompressedSize]
		cursor += th.CompressedSize

		tileW, tileH, tileX, tileY := tile.TileMeasures(t, head.TilesDimension(), width, height)

		if st := decodeTile(callbacks, head, th, tileW, tileH, tileX, tileY, channels, depth, payload, width, output); st != Ok {
			return nil, 0, 0, 0, 0, Settings{}, st
		}
	}

	return output, width, height, channels, depth, settings, Ok
}

func decodeTile(callbacks Callbacks, head container.ImageHead, th container.TileHead, tileW, tileH, tileX, tileY, channels, depth int, payload []byte, imageRowStride int, out []uint16) Status {
	planeSize := tileW * tileH

	if th.Compression == container.CompressionManbavaran {
		return NotImplemented
	}

	if depth <= 8 {
		var coeffs []int16
		switch th.Compression {
		case container.CompressionNone:
			coeffs = kagari.DecodeNone(payload)
		case container.CompressionKagari:
			var ok bool
			coeffs, ok = entropyDecode(payload, planeSize*channels)
			if !ok {
				return Error
			}
		default:
			return InvalidCompression
		}
		if len(coeffs) < planeSize*channels {
			return TruncatedTileData
		}

		k := kernelForTag(head.Wavelet)
		aux := make([]int16, planeSize)
		for c := 0; c < channels; c++ {
			plane := coeffs[c*planeSize : (c+1)*planeSize]
			lift.Unplane(k, tileW, tileH, plane, aux)
		}

		colortransform.ToOutput(colorTagFromContainer(head.Color), tileW, tileH, channels, depth, tileX, tileY, imageRowStride, coeffs, out)
		return Ok
	}

	coeffs32, ok := decodeNone32(payload, planeSize*channels)
	if !ok {
		return TruncatedTileData
	}
	k32 := wavelet.For[int32](waveletTagFromContainer(head.Wavelet))
	aux32 := make([]int32, planeSize)
	for c := 0; c < channels; c++ {
		plane := coeffs32[c*planeSize : (c+1)*planeSize]
		lift.Unplane(k32, tileW, tileH, plane, aux32)
	}
	colortransform.ToOutput(colorTagFromContainer(head.Color), tileW, tileH, channels, depth, tileX, tileY, imageRowStride, coeffs32, out)
	return Ok
}

func decodeNone32(payload []byte, want int) ([]int32, bool) {
	out := kagari.DecodeNone32(payload)
	return out, len(out) >= want
}

// entropyDecode is the inverse of entropyEncode: it reads the raw 32-bit
// coefficient and symbol counts, then either runs the rANS decoder over
// the remaining bitstream or, on the raw fallback sentinel, reads the
// symbols directly.
func entropyDecode(payload []byte, totalCoeffs int) ([]int16, bool) {
	if len(payload) < 8 {
		return nil, false
	}
	coeffCount := binary.LittleEndian.Uint32(payload[0:4])
	symbolCount := binary.LittleEndian.Uint32(payload[4:8])

	if symbolCount == math.MaxUint32 {
		rest := payload[8:]
		if len(rest)%2 != 0 {
			return nil, false
		}
		symbols := make([]uint16, len(rest)/2)
		for i := range symbols {
			symbols[i] = binary.LittleEndian.Uint16(rest[i*2:])
		}
		return kagari.Decompress(symbols, int(coeffCount), kagari.DefaultBlockLength)
	}

	words := make([]uint32, (len(payload)-8)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(payload[8+i*4:])
	}

	r := bio.NewReader(words)
	symbols := make([]uint16, symbolCount)
	if err := rans.Decode(r, symbols); err != nil {
		return nil, false
	}

	return kagari.Decompress(symbols, int(coeffCount), kagari.DefaultBlockLength)
}

func kernelForTag(t container.WaveletTag) wavelet.Kernel[int16] {
	return wavelet.For[int16](waveletTagFromContainer(t))
}

func waveletTagFromContainer(t container.WaveletTag) wavelet.Tag {
	switch t {
	case container.WaveletCDF53:
		return wavelet.TagCDF53
	case container.WaveletDD137:
		return wavelet.TagDD137
	default:
		return wavelet.TagHaar
	}
}

func colorTagFromContainer(t container.ColorTag) colortransform.Tag {
	switch t {
	case container.ColorYCoCg:
		return colortransform.TagYCoCg
	case container.ColorSubtractG:
		return colortransform.TagSubtractG
	default:
		return colortransform.TagNone
	}
}

func settingsFromHead(head container.ImageHead) Settings {
	s := DefaultSettings()
	s.TilesDimension = head.TilesDimension()
	switch head.Color {
	case container.ColorYCoCg:
		s.Color = ColorYCoCg
	case container.ColorSubtractG:
		s.Color = ColorSubtractG
	default:
		s.Color = ColorNone
	}
	switch head.Wavelet {
	case container.WaveletCDF53:
		s.Wavelet = WaveletCDF53
	case container.WaveletDD137:
		s.Wavelet = WaveletDD137
	case container.WaveletHaar:
		s.Wavelet = WaveletHaar
	default:
		s.Wavelet = WaveletNone
	}
	switch head.Wrap {
	case container.WrapMirror:
		s.Wrap = WrapMirror
	case container.WrapRepeat:
		s.Wrap = WrapRepeat
	case container.WrapZero:
		s.Wrap = WrapZero
	default:
		s.Wrap = WrapClamp
	}
	switch head.Compression {
	case container.CompressionNone:
		s.Compression = CompressionNone
	case container.CompressionManbavaran:
		s.Compression = CompressionManbavaran
	default:
		s.Compression = CompressionKagari
	}
	return s
}

func mapContainerError(err error) Status {
	switch err {
	case container.ErrNotAnAkoFile:
		return NotAnAkoFile
	case container.ErrTruncatedImageHead:
		return TruncatedImageHead
	case container.ErrTruncatedTileHead:
		return TruncatedTileHead
	case container.ErrInvalidTileHead:
		return InvalidTileHead
	default:
		return Error
	}
}
