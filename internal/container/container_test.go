package container

import "testing"

func TestImageHeadRoundtrip(t *testing.T) {
	h := ImageHead{
		Width: 1920, Height: 1080, Depth: 8, Channels: 3,
		Color: ColorYCoCg, Wavelet: WaveletCDF53, Wrap: WrapClamp,
		Compression: CompressionKagari, TilesDimensionLog: 9,
	}
	buf := WriteImageHead(h)
	if len(buf) != ImageHeadSize {
		t.Fatalf("WriteImageHead produced %d bytes, want %d", len(buf), ImageHeadSize)
	}
	got, err := ReadImageHead(buf)
	if err != nil {
		t.Fatalf("ReadImageHead: %v", err)
	}
	if got != h {
		t.Fatalf("roundtrip mismatch: got %+v want %+v", got, h)
	}
}

func TestImageHeadBadMagic(t *testing.T) {
	buf := make([]byte, ImageHeadSize)
	if _, err := ReadImageHead(buf); err != ErrNotAnAkoFile {
		t.Fatalf("expected ErrNotAnAkoFile, got %v", err)
	}
}

func TestImageHeadTruncated(t *testing.T) {
	if _, err := ReadImageHead(make([]byte, 4)); err != ErrTruncatedImageHead {
		t.Fatalf("expected ErrTruncatedImageHead, got %v", err)
	}
}

func TestTileHeadRoundtrip(t *testing.T) {
	h := TileHead{No: 7, CompressedSize: 4096, Compression: CompressionKagari}
	buf := WriteTileHead(h)
	got, err := ReadTileHead(buf)
	if err != nil {
		t.Fatalf("ReadTileHead: %v", err)
	}
	if got != h {
		t.Fatalf("roundtrip mismatch: got %+v want %+v", got, h)
	}
}

func TestTileHeadBadMagic(t *testing.T) {
	buf := make([]byte, TileHeadSize)
	if _, err := ReadTileHead(buf); err != ErrInvalidTileHead {
		t.Fatalf("expected ErrInvalidTileHead, got %v", err)
	}
}

func TestTilesDimensionZeroMeansNoTiling(t *testing.T) {
	h := ImageHead{TilesDimensionLog: 0}
	if h.TilesDimension() != 0 {
		t.Fatalf("expected 0, got %d", h.TilesDimension())
	}
	h.TilesDimensionLog = 9
	if h.TilesDimension() != 512 {
		t.Fatalf("expected 512, got %d", h.TilesDimension())
	}
}
