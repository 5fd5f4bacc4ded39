/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/mavcodec/pkg/codec"
	"github.com/ssargent/mavcodec/pkg/schema"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Inspect message schemas of the dialect",
}

var schemaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every message with its lengths and crcExtra",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDialect(cmd)
		if err != nil {
			return err
		}
		return listSchemas(cmd.OutOrStdout(), d)
	},
}

var schemaShowCmd = &cobra.Command{
	Use:   "show NAME|ID",
	Short: "Show the wire layout of one message",
	Long: `Show the wire layout of one message: fields in wire order with their offsets,
payload lengths and crcExtra.

Examples:
  mavcodec schema show OPENHD_AIR_LOAD
  mavcodec schema show 147 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		d, err := loadDialect(cmd)
		if err != nil {
			return err
		}
		m, err := findSchema(d, args[0])
		if err != nil {
			return err
		}
		return showSchema(cmd.OutOrStdout(), m, format)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.AddCommand(schemaListCmd)
	schemaCmd.AddCommand(schemaShowCmd)
	schemaShowCmd.Flags().String("format", "yaml", "Output format (yaml or json)")
}

func findSchema(d *codec.Dialect, key string) (*schema.MessageSchema, error) {
	if m, ok := d.ByName(strings.ToUpper(key)); ok {
		return m, nil
	}
	if id, err := strconv.ParseUint(key, 10, 32); err == nil {
		if m, ok := d.ByID(uint32(id)); ok {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %s is not in dialect %s", codec.ErrUnknownMessageID, key, d.Name())
}

func listSchemas(w io.Writer, d *codec.Dialect) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLEN\tMIN\tCRC_EXTRA\tTYPED")
	for _, m := range d.All() {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%t\n", m.ID, m.Name, m.PayloadLen, m.MinPayloadLen, m.CRCExtra, d.Typed(m.ID))
	}
	return tw.Flush()
}

func showSchema(w io.Writer, m *schema.MessageSchema, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	}
	return fmt.Errorf("unknown format %q (want yaml or json)", format)
}
