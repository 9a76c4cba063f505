package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravoids/internal/export"
)

var (
	flagFormat string
	flagOut    string
)

var dumpCmd = &cobra.Command{
	Use:   "dump <galaxy>",
	Short: "Export a decoded planet",
	Long: `Decodes one planet from a galaxy file and writes the full snapshot
in the chosen format.

Examples:
  gravoids dump galaxy.bin --planet 3
  gravoids dump galaxy.bin --planet 3 --format json
  gravoids dump galaxy.bin --planet 3 --format msgpack -o planet3.bin`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: "+strings.Join(export.List(), ", "))
	dumpCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default: stdout)")
}

func runDump(cmd *cobra.Command, args []string) {
	p, _, err := loadPlanet(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := export.Encode(flagFormat, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, export.ErrUnknownFormat) {
			fmt.Fprintf(os.Stderr, "Available formats: %s\n", strings.Join(export.List(), ", "))
		}
		os.Exit(1)
	}

	if flagOut == "" {
		os.Stdout.Write(out)
		return
	}
	if err := os.WriteFile(flagOut, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to write %s: %v\n", flagOut, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d bytes to %s\n", len(out), flagOut)
}
