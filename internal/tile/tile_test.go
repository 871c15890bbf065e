package tile

import "testing"

func TestTilesNoNoTiling(t *testing.T) {
	if got := TilesNo(0, 1920, 1080); got != 1 {
		t.Fatalf("TilesNo(0,...) = %d, want 1", got)
	}
}

func TestTilesNoGrid(t *testing.T) {
	if got := TilesNo(512, 1920, 1080); got != 4*3 {
		t.Fatalf("TilesNo(512,1920,1080) = %d, want 12", got)
	}
}

func TestTileMeasuresPartition(t *testing.T) {
	width, height, td := 1000, 700, 256
	n := TilesNo(td, width, height)

	covered := make([][]bool, height)
	for i := range covered {
		covered[i] = make([]bool, width)
	}

	for i := 0; i < n; i++ {
		w, h, x, y := TileMeasures(i, td, width, height)
		if w > td || h > td {
			t.Fatalf("tile %d exceeds tiles_dimension: %dx%d", i, w, h)
		}
		for row := y; row < y+h; row++ {
			for col := x; col < x+w; col++ {
				if covered[row][col] {
					t.Fatalf("pixel (%d,%d) covered by more than one tile", col, row)
				}
				covered[row][col] = true
			}
		}
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if !covered[row][col] {
				t.Fatalf("pixel (%d,%d) not covered by any tile", col, row)
			}
		}
	}
}

func TestLiftsNo(t *testing.T) {
	if got := LiftsNo(1, 1); got != 0 {
		t.Fatalf("LiftsNo(1,1) = %d, want 0", got)
	}
	if got := LiftsNo(16, 16); got != 4 {
		t.Fatalf("LiftsNo(16,16) = %d, want 4", got)
	}
}

func TestValidateSettingsOnlyChecksInsideTilingBranch(t *testing.T) {
	// Negative quantization is only rejected when tiling is requested, a
	// quirk carried over intentionally from the source.
	s := Settings{TilesDimension: 0, Quantization: -1}
	if got := ValidateSettings(s); got != ErrNone {
		t.Fatalf("expected ErrNone with tiles_dimension == 0, got %v", got)
	}

	s.TilesDimension = 256
	if got := ValidateSettings(s); got != ErrInvalidSettings {
		t.Fatalf("expected ErrInvalidSettings, got %v", got)
	}
}

func TestValidateSettingsTilesDimensionMustBePowerOfTwo(t *testing.T) {
	s := Settings{TilesDimension: 100}
	if got := ValidateSettings(s); got != ErrInvalidTilesDimension {
		t.Fatalf("expected ErrInvalidTilesDimension, got %v", got)
	}
}

func TestValidatePropertiesRanges(t *testing.T) {
	if got := ValidateProperties(Properties{Width: 0, Height: 1, Channels: 1, Depth: 8}); got != ErrInvalidDimensions {
		t.Fatalf("expected ErrInvalidDimensions, got %v", got)
	}
	if got := ValidateProperties(Properties{Width: 1, Height: 1, Channels: 17, Depth: 8}); got != ErrInvalidChannelsNo {
		t.Fatalf("expected ErrInvalidChannelsNo, got %v", got)
	}
	if got := ValidateProperties(Properties{Width: 1, Height: 1, Channels: 1, Depth: 17}); got != ErrInvalidDepth {
		t.Fatalf("expected ErrInvalidDepth, got %v", got)
	}
}
