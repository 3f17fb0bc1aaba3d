package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	asn1safe "github.com/JesseCoretta/go-asn1safe"
)

var (
	timeDays uint32
	timeUnix int64
)

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Render an ASN.1 time value",
	Long: `Render the time a number of days from now, or a fixed UNIX time when
--unix is given. Years 1950 through 2049 are held as UTCTime and all others
as GeneralizedTime.`,
	Args: cobra.NoArgs,
	RunE: runTime,
}

func init() {
	timeCmd.Flags().Uint32Var(&timeDays, "days", 0, "Days from now")
	timeCmd.Flags().Int64Var(&timeUnix, "unix", 0, "UNIX time in seconds")
}

// timeRecord describes one rendered time value.
type timeRecord struct {
	Text    string `yaml:"text"`
	RFC3339 string `yaml:"rfc3339"`
}

func runTime(cmd *cobra.Command, args []string) error {
	var (
		tm  *asn1safe.Time
		err error
	)
	if cmd.Flags().Changed("unix") {
		tm, err = asn1safe.TimeFromUnix(timeUnix)
	} else {
		tm, err = asn1safe.DaysFromNow(timeDays)
	}
	if err != nil {
		return fmt.Errorf("cannot build time: %w", err)
	}
	defer tm.Close()

	txt, err := tm.Text()
	if err != nil {
		return fmt.Errorf("cannot render time: %w", err)
	}
	cast, err := tm.Cast()
	if err != nil {
		return fmt.Errorf("cannot read time: %w", err)
	}

	rec := timeRecord{Text: txt, RFC3339: cast.Format(time.RFC3339)}
	return emit(cmd.OutOrStdout(), rec, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, rec.Text)
		return err
	})
}
