// Command akoc is a small command-line wrapper around the ako codec: it
// encodes and decodes raw interleaved-sample rasters against the Ako
// container format, for testing and benchmarking the library without a
// pixel-format front end.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/baAlex/ako-go/internal/obslog"
)

var logLevel string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "akoc",
		Short: "Encode and decode Ako wavelet image containers",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(obslog.New(obslog.Options{Level: obslog.ParseLevel(logLevel)}))
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, or error")

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the akoc version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(Version)
			return nil
		},
	}
}

// Version is the akoc build version, overridden at release build time via
// -ldflags.
var Version = "dev"
