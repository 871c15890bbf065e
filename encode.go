package ako

import (
	"encoding/binary"
	"math"

	"github.com/baAlex/ako-go/internal/bio"
	"github.com/baAlex/ako-go/internal/colortransform"
	"github.com/baAlex/ako-go/internal/container"
	"github.com/baAlex/ako-go/internal/kagari"
	"github.com/baAlex/ako-go/internal/lift"
	"github.com/baAlex/ako-go/internal/quant"
	"github.com/baAlex/ako-go/internal/rans"
	"github.com/baAlex/ako-go/internal/tile"
	"github.com/baAlex/ako-go/internal/wavelet"
)

// Encode compresses a width x height raster of channels interleaved
// samples (one uint16 per sample regardless of depth) into an Ako
// container, following settings. depth must be in [1, 16]; depth <= 8
// selects the 16-bit coefficient path, depth > 8 the 32-bit one.
func Encode(callbacks Callbacks, settings Settings, width, height, channels, depth int, input []uint16) ([]byte, Status) {
	if st := validate(settings, width, height, channels, depth, len(input)); st != Ok {
		return nil, st
	}

	if depth > 8 && settings.Compression == CompressionKagari {
		// Kagari/rANS is only wired for the 16-bit coefficient path,
		// mirroring the source's own unimplemented 32-bit Compress
		// specialization; fall back to raw storage instead of failing
		// outright.
		settings.Compression = CompressionNone
	}

	tilesNo := tile.TilesNo(settings.TilesDimension, width, height)
	fireGeneric(callbacks, EventImageDimensions, uint64(width), uint64(height), 0)
	fireGeneric(callbacks, EventImageChannels, uint64(channels), 0, 0)
	fireGeneric(callbacks, EventImageDepth, uint64(depth), 0, 0)
	fireGeneric(callbacks, EventTilesNo, uint64(tilesNo), 0, 0)

	head := container.ImageHead{
		Width: width, Height: height, Depth: depth, Channels: channels,
		Color:             containerColorTag(settings.Color),
		Wavelet:           containerWaveletTag(settings.Wavelet),
		Wrap:              containerWrapTag(settings.Wrap),
		Compression:       containerCompressionTag(settings.Compression),
		TilesDimensionLog: tile.Ctz(uint(settings.TilesDimension)),
	}
	out := container.WriteImageHead(head)

	// One workarea is allocated up front, sized for the largest tile this
	// tiling can produce, and reused across every tile instead of churning
	// the allocator once per tile; edge tiles just use a leading slice of it.
	workarea := newWorkarea(depth, settings.TilesDimension, width, height, channels)
	fireGeneric(callbacks, EventWorkareaSize, uint64(workarea.size()), 0, 0)

	for t := 0; t < tilesNo; t++ {
		tileW, tileH, tileX, tileY := tile.TileMeasures(t, settings.TilesDimension, width, height)
		fireGeneric(callbacks, EventTileDimensions, uint64(t), uint64(tileW), uint64(tileH))
		fireGeneric(callbacks, EventTilePosition, uint64(t), uint64(tileX), uint64(tileY))

		payload, compression := encodeTile(callbacks, settings, depth, tileW, tileH, channels, tileX, tileY, width, input, workarea)
		fireGeneric(callbacks, EventTileDataSize, uint64(t), uint64(len(payload)), 0)

		out = append(out, container.WriteTileHead(container.TileHead{
			No: t, CompressedSize: len(payload), Compression: compression,
		})...)
		out = append(out, payload...)
	}

	return out, Ok
}

// workarea holds the one reusable coefficient and lift-scratch buffer pair
// encodeTile draws its per-tile slices from, sized with tile.WorkareaSize/
// tile.DataSize for the worst-case tile this tiling produces.
type workarea struct {
	coeffs16 []int16
	aux16    []int16
	coeffs32 []int32
	aux32    []int32
}

func newWorkarea(depth, tilesDimension, width, height, channels int) workarea {
	if depth <= 8 {
		return workarea{
			coeffs16: make([]int16, tile.WorkareaSize(tilesDimension, width, height, channels)),
			aux16:    make([]int16, tile.WorkareaSize(tilesDimension, width, height, 1)),
		}
	}
	return workarea{
		coeffs32: make([]int32, tile.WorkareaSize(tilesDimension, width, height, channels)),
		aux32:    make([]int32, tile.WorkareaSize(tilesDimension, width, height, 1)),
	}
}

func (w workarea) size() int {
	return len(w.coeffs16) + len(w.aux16) + len(w.coeffs32) + len(w.aux32)
}

func encodeTile(callbacks Callbacks, settings Settings, depth, tileW, tileH, channels, tileX, tileY, imageRowStride int, input []uint16, wa workarea) ([]byte, container.CompressionTag) {
	planeSize := tileW * tileH

	if depth <= 8 {
		coeffs := wa.coeffs16[:planeSize*channels]
		colortransform.ToInternal(colorTransformTag(settings.Color), settings.Discard, tileW, tileH, channels, imageRowStride, sliceAtTile(input, tileX, tileY, imageRowStride, channels), coeffs)

		if callbacks.FormatEvent != nil {
			callbacks.FormatEvent(settings.Color, 0, nil)
		}

		k := wavelet.For[int16](settings.Wavelet.tag())
		aux := wa.aux16[:planeSize]
		for c := 0; c < channels; c++ {
			lift.Plane(k, tileW, tileH, coeffs[c*planeSize:(c+1)*planeSize], aux)
		}

		quantization := settings.Quantization
		if settings.Ratio >= 1 && settings.Compression != CompressionNone {
			targetSize := int(float64(len(coeffs)) / settings.Ratio)
			result := quant.Search(targetSize, func(q float64) (int, bool) {
				trial := make([]int16, len(coeffs))
				copy(trial, coeffs)
				quantizeChannels(trial, planeSize, channels, tileW, tileH, q, settings.ChromaLoss)
				symbols := kagari.Compress(trial, kagari.DefaultBlockLength)
				return len(entropyEncode(len(trial), symbols)), true
			})
			quantization = result.Quantization
		}

		if quantization > 1 {
			quantizeChannels(coeffs, planeSize, channels, tileW, tileH, quantization, settings.ChromaLoss)
		}

		if settings.Compression == CompressionNone {
			return kagari.EncodeNone(coeffs), container.CompressionNone
		}

		symbols := kagari.Compress(coeffs, kagari.DefaultBlockLength)
		return entropyEncode(len(coeffs), symbols), container.CompressionKagari
	}

	coeffs32 := wa.coeffs32[:planeSize*channels]
	colortransform.ToInternal(colorTransformTag(settings.Color), settings.Discard, tileW, tileH, channels, imageRowStride, sliceAtTile(input, tileX, tileY, imageRowStride, channels), coeffs32)

	k := wavelet.For[int32](settings.Wavelet.tag())
	aux32 := wa.aux32[:planeSize]
	for c := 0; c < channels; c++ {
		plane := coeffs32[c*planeSize : (c+1)*planeSize]
		lift.Plane(k, tileW, tileH, plane, aux32)
		if settings.Quantization > 1 {
			quant.ApplyToPlane(plane, tileW, tileH, settings.Quantization, settings.ChromaLoss, c >= 1)
		}
	}
	return kagari.EncodeNone32(coeffs32), container.CompressionNone
}

// entropyEncode streams a Kagari symbol tuple sequence through the rANS
// coder, prefixed with the raw (non-entropy-coded) coefficient and symbol
// counts as plain little-endian words so the decoder can size its rANS
// output buffer before decoding. bio.Writer.Write rejects any bitLength
// >= AccumulatorLen, so these two counts are written directly into the
// output bytes rather than through the bit writer.
func entropyEncode(coeffCount int, symbols []uint16) []byte {
	words := make([]uint32, len(symbols)+4)
	w := bio.NewWriter(words)
	if err := rans.Encode(w, symbols); err != nil {
		// Encoder refuses input: store the raw 16-bit symbols behind a
		// sentinel symbol count instead, which entropyDecode reads back
		// directly.
		return rawFallback(coeffCount, symbols)
	}
	n := w.Finish()

	out := make([]byte, 8+4*int(n))
	binary.LittleEndian.PutUint32(out[0:4], uint32(coeffCount))
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(symbols)))
	for i := uint32(0); i < n; i++ {
		binary.LittleEndian.PutUint32(out[8+i*4:], words[i])
	}
	return out
}

func rawFallback(coeffCount int, symbols []uint16) []byte {
	out := make([]byte, 8+len(symbols)*2)
	binary.LittleEndian.PutUint32(out[0:4], uint32(coeffCount))
	binary.LittleEndian.PutUint32(out[4:8], math.MaxUint32) // sentinel: no rANS body follows
	for i, s := range symbols {
		binary.LittleEndian.PutUint16(out[8+i*2:], s)
	}
	return out
}

// quantizeChannels applies one quantization step across every channel plane
// of a tile, following the same per-channel layout encodeTile lifts into.
func quantizeChannels(coeffs []int16, planeSize, channels, tileW, tileH int, q, chromaLoss float64) {
	for c := 0; c < channels; c++ {
		quant.ApplyToPlane(coeffs[c*planeSize:(c+1)*planeSize], tileW, tileH, q, chromaLoss, c >= 1)
	}
}

func sliceAtTile(input []uint16, tileX, tileY, rowStride, channels int) []uint16 {
	return input[(tileY*rowStride+tileX)*channels:]
}

func fireGeneric(c Callbacks, e GenericEvent, a, b, cc uint64) {
	if c.GenericEvent != nil {
		c.GenericEvent(e, EventValue{A: a, B: b, C: cc})
	}
}

func colorTransformTag(c Color) colortransform.Tag {
	switch c {
	case ColorYCoCg:
		return colortransform.TagYCoCg
	case ColorSubtractG:
		return colortransform.TagSubtractG
	default:
		return colortransform.TagNone
	}
}

func containerColorTag(c Color) container.ColorTag {
	switch c {
	case ColorYCoCg:
		return container.ColorYCoCg
	case ColorSubtractG:
		return container.ColorSubtractG
	default:
		return container.ColorNone
	}
}

func containerWaveletTag(w Wavelet) container.WaveletTag {
	switch w {
	case WaveletDD137:
		return container.WaveletDD137
	case WaveletCDF53:
		return container.WaveletCDF53
	case WaveletHaar:
		return container.WaveletHaar
	default:
		return container.WaveletNone
	}
}

func containerWrapTag(w Wrap) container.WrapTag {
	switch w {
	case WrapMirror:
		return container.WrapMirror
	case WrapRepeat:
		return container.WrapRepeat
	case WrapZero:
		return container.WrapZero
	default:
		return container.WrapClamp
	}
}

func containerCompressionTag(c Compression) container.CompressionTag {
	switch c {
	case CompressionManbavaran:
		return container.CompressionManbavaran
	case CompressionNone:
		return container.CompressionNone
	default:
		return container.CompressionKagari
	}
}

func validate(settings Settings, width, height, channels, depth, inputLen int) Status {
	if st := tile.ValidateProperties(tile.Properties{Width: width, Height: height, Channels: channels, Depth: depth}); st != tile.ErrNone {
		return mapValidationError(st)
	}
	if st := tile.ValidateSettings(tile.Settings{
		TilesDimension: settings.TilesDimension, Quantization: settings.Quantization,
		Gate: settings.Gate, ChromaLoss: settings.ChromaLoss, Ratio: settings.Ratio,
	}); st != tile.ErrNone {
		return mapValidationError(st)
	}
	if st := tile.ValidateInput(inputLen, width*height*channels); st != tile.ErrNone {
		return mapValidationError(st)
	}
	if (settings.Color == ColorYCoCg || settings.Color == ColorSubtractG) && channels < 3 {
		return InvalidColor
	}
	if settings.Compression == CompressionManbavaran {
		return NotImplemented
	}
	return Ok
}

func mapValidationError(e tile.ValidationError) Status {
	switch e {
	case tile.ErrInvalidCallbacks:
		return InvalidCallbacks
	case tile.ErrInvalidSettings:
		return InvalidSettings
	case tile.ErrInvalidTilesDimension:
		return InvalidTilesDimension
	case tile.ErrInvalidDimensions:
		return InvalidDimensions
	case tile.ErrInvalidChannelsNo:
		return InvalidChannelsNo
	case tile.ErrInvalidDepth:
		return InvalidDepth
	case tile.ErrInvalidInput:
		return InvalidInput
	default:
		return Ok
	}
}
