package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	asn1safe "github.com/JesseCoretta/go-asn1safe"
	"github.com/JesseCoretta/go-asn1safe/nid"
)

var oidNoName bool

var oidCmd = &cobra.Command{
	Use:   "oid <name|dotted>...",
	Short: "Resolve object identifiers",
	Long: `Resolve each argument, given as a short name, long name or dotted form,
to its registered identifier and text forms.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOID,
}

var oidsCmd = &cobra.Command{
	Use:   "oids",
	Short: "List registered object identifiers",
	Args:  cobra.NoArgs,
	RunE:  runOIDs,
}

func init() {
	oidCmd.Flags().BoolVar(&oidNoName, "no-name", false, "Accept dotted forms only")
}

// oidRecord describes one resolved object identifier.
type oidRecord struct {
	Input     string `yaml:"input,omitempty"`
	Nid       int    `yaml:"nid"`
	ShortName string `yaml:"short_name,omitempty"`
	LongName  string `yaml:"long_name,omitempty"`
	Text      string `yaml:"text"`
	Dotted    string `yaml:"dotted"`
}

func resolveOID(in string, noName bool) (oidRecord, error) {
	o, err := asn1safe.ObjectFromText(in, noName)
	if err != nil {
		return oidRecord{}, fmt.Errorf("cannot resolve %q: %w", in, err)
	}
	defer o.Close()

	rec := oidRecord{Input: in, Text: o.Text(), Dotted: o.Dotted()}
	if n, ok := o.Nid(); ok {
		rec.Nid = int(n)
		rec.ShortName = n.ShortName()
		rec.LongName = n.LongName()
	}
	return rec, nil
}

func runOID(cmd *cobra.Command, args []string) error {
	recs := make([]oidRecord, 0, len(args))
	for _, arg := range args {
		rec, err := resolveOID(arg, oidNoName)
		if err != nil {
			return err
		}
		recs = append(recs, rec)
	}

	return emit(cmd.OutOrStdout(), recs, func(w io.Writer) error {
		for _, rec := range recs {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				rec.Input, rec.Dotted, rec.Text, nidLabel(rec)); err != nil {
				return err
			}
		}
		return nil
	})
}

func runOIDs(cmd *cobra.Command, args []string) error {
	all := nid.All()
	recs := make([]oidRecord, 0, len(all))
	for _, e := range all {
		recs = append(recs, oidRecord{
			Nid:       int(e.Nid),
			ShortName: e.ShortName,
			LongName:  e.LongName,
			Text:      e.LongName,
			Dotted:    e.OID.String(),
		})
	}

	return emit(cmd.OutOrStdout(), recs, func(w io.Writer) error {
		for _, rec := range recs {
			if _, err := fmt.Fprintf(w, "%5d  %-28s %-16s %s\n",
				rec.Nid, rec.Dotted, rec.ShortName, rec.LongName); err != nil {
				return err
			}
		}
		return nil
	})
}

func nidLabel(rec oidRecord) string {
	if rec.Nid == 0 {
		return "-"
	}
	return fmt.Sprintf("%s(%d)", rec.ShortName, rec.Nid)
}
