// Package ako implements the core of a lossy wavelet still-image codec:
// a tile pipeline running color transform, 2D lifting wavelet transform,
// deadzone quantization and rANS/Kagari entropy coding over a compact
// little-endian container.
package ako

import "github.com/baAlex/ako-go/internal/wavelet"

// Color selects the reversible color decorrelation applied before the
// wavelet transform.
type Color int

const (
	ColorYCoCg Color = iota
	ColorSubtractG
	ColorNone
)

func (c Color) String() string {
	switch c {
	case ColorYCoCg:
		return "YCoCg"
	case ColorSubtractG:
		return "SubtractG"
	default:
		return "None"
	}
}

// Wavelet selects the lifting kernel used by the DWT.
type Wavelet int

const (
	WaveletDD137 Wavelet = iota
	WaveletCDF53
	WaveletHaar
	WaveletNone
)

func (w Wavelet) String() string {
	switch w {
	case WaveletDD137:
		return "DD137"
	case WaveletCDF53:
		return "CDF53"
	case WaveletHaar:
		return "Haar"
	default:
		return "None"
	}
}

func (w Wavelet) tag() wavelet.Tag {
	switch w {
	case WaveletCDF53:
		return wavelet.TagCDF53
	case WaveletDD137:
		return wavelet.TagDD137
	default:
		return wavelet.TagHaar
	}
}

// Wrap selects the edge-extension policy the wavelet kernels use at tile
// and subband boundaries.
type Wrap int

const (
	WrapClamp Wrap = iota
	WrapMirror
	WrapRepeat
	WrapZero
)

func (w Wrap) String() string {
	switch w {
	case WrapMirror:
		return "Mirror"
	case WrapRepeat:
		return "Repeat"
	case WrapZero:
		return "Zero"
	default:
		return "Clamp"
	}
}

// Compression selects the tile entropy coder.
type Compression int

const (
	CompressionKagari Compression = iota
	CompressionManbavaran
	CompressionNone
)

func (c Compression) String() string {
	switch c {
	case CompressionManbavaran:
		return "Manbavaran"
	case CompressionNone:
		return "None"
	default:
		return "Kagari"
	}
}

// Settings carries every value written into (or recoverable from) the
// container header, plus the encoder-only quality knobs that are not.
type Settings struct {
	Color          Color
	Wavelet        Wavelet
	Wrap           Wrap
	Compression    Compression
	TilesDimension int // 0 or a power of two in [8, 2^25]

	// Encoder-only, not recoverable from the container.
	Quantization float64
	Gate         float64
	ChromaLoss   float64
	Discard      bool
	Ratio        float64
}

// DefaultSettings returns a reasonable general-purpose starting point:
// YCoCg color, CDF 5/3 wavelet, clamp edges, Kagari/rANS compression, one
// tile per image, and quantization left at lossless (1.0).
func DefaultSettings() Settings {
	return Settings{
		Color:          ColorYCoCg,
		Wavelet:        WaveletCDF53,
		Wrap:           WrapClamp,
		Compression:    CompressionKagari,
		TilesDimension: 0,
		Quantization:   1.0,
		Gate:           0,
		ChromaLoss:     1.0,
		Discard:        false,
		Ratio:          0,
	}
}

// GenericEvent names the generic, compression-neutral progress events the
// orchestrator may report through Callbacks.GenericEvent.
type GenericEvent int

const (
	EventImageDimensions GenericEvent = iota
	EventImageChannels
	EventImageDepth
	EventTilesNo
	EventTilesDimension
	EventWorkareaSize
	EventTileDimensions
	EventTilePosition
	EventTileDataSize
)

// EventValue is the tagged union of parameter shapes an event callback
// receives: events either carry small unsigned counters or a single size
// payload, never both.
type EventValue struct {
	A, B, C uint64
	Size    uint64
}

// Callbacks mirrors the host-provided hooks the orchestrator calls during
// encode and decode. Every hook is optional (nil skips the call); they are
// strictly advisory and must never influence the bytes written or the
// pixels decoded.
type Callbacks struct {
	GenericEvent     func(event GenericEvent, v EventValue)
	FormatEvent      func(color Color, tileNo int, data []int32)
	LiftingEvent     func(w Wavelet, wrap Wrap, tileNo int, data []int32)
	CompressionEvent func(c Compression, tileNo int, data []byte)
	HistogramEvent   func(tileNo int, histogram []int)
}

// DefaultCallbacks returns a Callbacks value with every hook left nil.
func DefaultCallbacks() Callbacks {
	return Callbacks{}
}

// Metadata describes an image recovered from a container, mirroring the
// values the image head stores plus the settings used to produce it.
type Metadata struct {
	Width, Height   int
	Channels, Depth int
	Settings        Settings
}
