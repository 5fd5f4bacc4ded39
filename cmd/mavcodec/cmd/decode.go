/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/mavcodec/pkg/api"
	"github.com/ssargent/mavcodec/pkg/codec"
)

// rejectedFrame is printed for a hex argument that did not validate
type rejectedFrame struct {
	Frame  string `json:"frame"`
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [HEX...]",
	Short: "Validate and decode frames",
	Long: `Validate frames against the dialect and print one JSON object per frame.

Frames are given as hex arguments, or read as a raw byte stream with --file
(use - for standard input). A stream is scanned for start markers; frames
that fail validation are dropped and reported at debug log level.

Examples:
  mavcodec decode fd020000000101ce04002a375569
  mavcodec decode --file capture.bin --log-level debug
  socat -u UDP-RECV:14550 - | mavcodec decode --file -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		if file == "" && len(args) == 0 {
			return fmt.Errorf("give frames as hex arguments or a stream with --file")
		}

		d, err := loadDialect(cmd)
		if err != nil {
			return err
		}
		logger := loggerFrom(cmd)

		if file != "" {
			in := cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("failed to open stream: %w", err)
				}
				defer f.Close()
				in = f
			}
			stats, err := decodeStream(cmd.OutOrStdout(), d, in, logger)
			if err != nil {
				return err
			}
			logger.Info("stream decoded",
				"frames", stats.Frames,
				"skipped_bytes", stats.SkippedBytes,
				"dropped", stats.Dropped)
			return nil
		}

		rejected, err := decodeHex(cmd.OutOrStdout(), d, args)
		if err != nil {
			return err
		}
		if rejected > 0 {
			return fmt.Errorf("%d of %d frames rejected", rejected, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringP("file", "f", "", "Read a raw byte stream from a file (- for stdin)")
}

// decodeHex decodes each hex frame and writes one JSON line per frame. It
// returns the number of frames that did not validate.
func decodeHex(w io.Writer, d *codec.Dialect, frames []string) (int, error) {
	enc := json.NewEncoder(w)
	rejected := 0
	for _, text := range frames {
		data, err := hex.DecodeString(strings.Join(strings.Fields(text), ""))
		if err != nil {
			return rejected, fmt.Errorf("frame %q is not valid hex: %w", text, err)
		}

		f, err := d.Parse(data)
		if err != nil {
			rejected++
			if err := enc.Encode(rejectedFrame{Frame: text, Error: err.Error(), Reason: codec.Reason(err)}); err != nil {
				return rejected, err
			}
			continue
		}
		if err := enc.Encode(api.NewDecodeResponse(d, f)); err != nil {
			return rejected, err
		}
	}
	return rejected, nil
}

// decodeStream writes every valid frame of r as a JSON line.
func decodeStream(w io.Writer, d *codec.Dialect, r io.Reader, logger *slog.Logger) (codec.ReaderStats, error) {
	reader := codec.NewReader(r, d)
	reader.OnDrop = func(err error, raw []byte) {
		logger.Debug("frame dropped", "reason", codec.Reason(err), "error", err, "length", len(raw))
	}

	enc := json.NewEncoder(w)
	for {
		f, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return reader.Stats(), nil
		}
		if err != nil {
			return reader.Stats(), fmt.Errorf("failed to read stream: %w", err)
		}
		if err := enc.Encode(api.NewDecodeResponse(d, f)); err != nil {
			return reader.Stats(), err
		}
	}
}
