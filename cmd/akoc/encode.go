package main

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	ako "github.com/baAlex/ako-go"
)

func newEncodeCmd() *cobra.Command {
	var (
		width, height, channels, depth int
		quantization, ratio            float64
		tilesDimension                 int
		color, wavelet, compression    string
		output                         string
	)

	cmd := &cobra.Command{
		Use:   "encode [raw-raster-file]",
		Short: "Encode a raw uint16-per-sample raster into an Ako container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if len(raw)%2 != 0 {
				return fmt.Errorf("raw raster file length must be a multiple of 2")
			}
			input := make([]uint16, len(raw)/2)
			for i := range input {
				input[i] = binary.LittleEndian.Uint16(raw[i*2:])
			}

			settings := ako.DefaultSettings()
			settings.TilesDimension = tilesDimension
			settings.Quantization = quantization
			settings.Ratio = ratio
			settings.Color = parseColor(color)
			settings.Wavelet = parseWavelet(wavelet)
			settings.Compression = parseCompression(compression)

			blob, status := ako.Encode(ako.DefaultCallbacks(), settings, width, height, channels, depth, input)
			if status != ako.Ok {
				return status
			}

			slog.Info("encoded", "bytes", len(blob), "tiles_dimension", tilesDimension)
			return os.WriteFile(output, blob, 0o644)
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "image height in pixels")
	cmd.Flags().IntVar(&channels, "channels", 3, "channels per pixel")
	cmd.Flags().IntVar(&depth, "depth", 8, "bits per channel")
	cmd.Flags().Float64Var(&quantization, "quantization", 1, "base quality knob (>=1)")
	cmd.Flags().Float64Var(&ratio, "ratio", 0, "target compression ratio (0 disables rate control)")
	cmd.Flags().IntVar(&tilesDimension, "tiles-dimension", 0, "tile side length (0 = no tiling)")
	cmd.Flags().StringVar(&color, "color", "ycocg", "ycocg, subtract-g, or none")
	cmd.Flags().StringVar(&wavelet, "wavelet", "cdf53", "cdf53, haar, dd137, or none")
	cmd.Flags().StringVar(&compression, "compression", "kagari", "kagari or none")
	cmd.Flags().StringVar(&output, "output", "out.ako", "output container path")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("height")

	return cmd
}

func parseColor(s string) ako.Color {
	switch s {
	case "subtract-g":
		return ako.ColorSubtractG
	case "none":
		return ako.ColorNone
	default:
		return ako.ColorYCoCg
	}
}

func parseWavelet(s string) ako.Wavelet {
	switch s {
	case "haar":
		return ako.WaveletHaar
	case "dd137":
		return ako.WaveletDD137
	case "none":
		return ako.WaveletNone
	default:
		return ako.WaveletCDF53
	}
}

func parseCompression(s string) ako.Compression {
	if s == "none" {
		return ako.CompressionNone
	}
	return ako.CompressionKagari
}
