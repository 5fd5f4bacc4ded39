/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/mavcodec/pkg/gen"
	"github.com/ssargent/mavcodec/pkg/schema"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate typed Go messages from a MAVLink XML definition",
	Long: `Generate a Go file with one typed message per definition message: constants,
schema, struct, pack and decode functions and per-field getters. Included
definition files are merged.

Examples:
  mavcodec gen --definition definitions/openhd.xml --package openhd --out messages_gen.go`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		definition, _ := cmd.Flags().GetString("definition")
		pkg, _ := cmd.Flags().GetString("package")
		out, _ := cmd.Flags().GetString("out")
		source, _ := cmd.Flags().GetString("source")

		code, err := generate(definition, gen.Options{Package: pkg, Source: source})
		if err != nil {
			return err
		}

		if out == "" || out == "-" {
			_, err := cmd.OutOrStdout().Write(code)
			return err
		}
		if err := os.WriteFile(out, code, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		loggerFrom(cmd).Info("generated messages", "definition", definition, "out", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().String("definition", "", "MAVLink XML definition file (required)")
	genCmd.Flags().String("package", "", "Go package name of the generated file (required)")
	genCmd.Flags().StringP("out", "o", "", "Output file (default: stdout)")
	genCmd.Flags().String("source", "", "Source name recorded in the generated header (default: definition file name)")
	if err := genCmd.MarkFlagRequired("definition"); err != nil {
		panic(err)
	}
	if err := genCmd.MarkFlagRequired("package"); err != nil {
		panic(err)
	}
}

func generate(definition string, opts gen.Options) ([]byte, error) {
	def, err := schema.LoadDefinition(definition)
	if err != nil {
		return nil, err
	}
	return gen.Generate(def, opts)
}
