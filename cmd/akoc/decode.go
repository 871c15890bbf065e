package main

import (
	"encoding/binary"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	ako "github.com/baAlex/ako-go"
)

func newDecodeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "decode [ako-file]",
		Short: "Decode an Ako container into a raw uint16-per-sample raster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			pixels, width, height, channels, depth, _, status := ako.Decode(ako.DefaultCallbacks(), blob)
			if status != ako.Ok {
				return status
			}

			slog.Info("decoded", "width", width, "height", height, "channels", channels, "depth", depth)

			raw := make([]byte, len(pixels)*2)
			for i, v := range pixels {
				binary.LittleEndian.PutUint16(raw[i*2:], v)
			}
			return os.WriteFile(output, raw, 0o644)
		},
	}

	cmd.Flags().StringVar(&output, "output", "out.raw", "output raw raster path")
	return cmd
}
