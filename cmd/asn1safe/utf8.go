package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	asn1safe "github.com/JesseCoretta/go-asn1safe"
)

var utf8Type string

var stringTypes = map[string]asn1safe.StringType{
	"utf8":      asn1safe.UTF8String,
	"bmp":       asn1safe.BMPString,
	"universal": asn1safe.UniversalString,
	"t61":       asn1safe.T61String,
	"ia5":       asn1safe.IA5String,
	"printable": asn1safe.PrintableString,
	"visible":   asn1safe.VisibleString,
}

var utf8Cmd = &cobra.Command{
	Use:   "utf8 <hex>",
	Short: "Convert a hex-encoded ASN.1 string to UTF-8",
	Args:  cobra.ExactArgs(1),
	RunE:  runUTF8,
}

func init() {
	utf8Cmd.Flags().StringVarP(&utf8Type, "type", "t", "utf8",
		"String type: utf8, bmp, universal, t61, ia5, printable, visible")
}

// utf8Record describes one converted string.
type utf8Record struct {
	Type   string `yaml:"type"`
	Length int    `yaml:"length"`
	UTF8   string `yaml:"utf8"`
}

func runUTF8(cmd *cobra.Command, args []string) error {
	typ, ok := stringTypes[strings.ToLower(utf8Type)]
	if !ok {
		return fmt.Errorf("unsupported string type %q", utf8Type)
	}
	data, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("invalid hex input: %w", err)
	}

	s, err := asn1safe.NewString(typ, data)
	if err != nil {
		return err
	}
	defer s.Close()

	u, err := s.AsUTF8()
	if err != nil {
		return fmt.Errorf("cannot convert %s: %w", typ, err)
	}

	rec := utf8Record{Type: typ.String(), Length: s.Len(), UTF8: u}
	return emit(cmd.OutOrStdout(), rec, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, rec.UTF8)
		return err
	})
}
