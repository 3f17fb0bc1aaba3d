// Command asn1safe inspects object identifiers, time values and string
// encodings through the asn1safe wrappers.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Build-time variables
var (
	version = "dev"
	commit  = "none"
)

// Global flags
var outputFormat string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asn1safe",
	Short: "Inspect ASN.1 primitive values",
	Long: `asn1safe resolves object identifiers, renders time values and converts
ASN.1 string encodings to UTF-8.

Examples:
  # Resolve an OID by name or dotted form
  asn1safe oid commonName 2.5.4.10

  # Render the time thirty days from now
  asn1safe time --days 30

  # Convert a BMPString to UTF-8
  asn1safe utf8 --type bmp 00480069`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch outputFormat {
		case "text", "yaml":
			return nil
		}
		return fmt.Errorf("unsupported output format %q (text, yaml)", outputFormat)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text",
		"Output format: text, yaml")

	rootCmd.AddCommand(oidCmd)
	rootCmd.AddCommand(oidsCmd)
	rootCmd.AddCommand(timeCmd)
	rootCmd.AddCommand(utf8Cmd)
}

// emit writes v as YAML when requested, and through text otherwise.
func emit(w io.Writer, v any, text func(io.Writer) error) error {
	if outputFormat != "yaml" {
		return text(w)
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = w.Write(data)
	return err
}
