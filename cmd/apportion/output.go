package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/apportion"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validFormat(format string) bool {
	switch format {
	case formatText, formatJSON, formatYAML:
		return true
	default:
		return false
	}
}

func writeResult(w io.Writer, format string, res *apportion.Result) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(res)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}

		return enc.Close()
	default:
		return writeText(w, res)
	}
}

// writeText renders the party summary, the per-state breakdown and the
// coalition table.
func writeText(w io.Writer, res *apportion.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "election\t%s\n", res.Election)
	fmt.Fprintf(tw, "run\t%s\n", res.RunID)
	fmt.Fprintf(tw, "inputs\t%s\n", res.InputsHash)
	fmt.Fprintf(tw, "seats\t%d (nominal %d)\n", res.AssemblySize, res.NominalSeats)
	fmt.Fprintf(tw, "divisor\t%.4f\n\n", res.LevelingDivisor)

	fmt.Fprintln(tw, "PARTY\tSECOND VOTES\tSHARE\tPROPORTIONAL\tDIRECT\tFLOOR\tSEATS\tELIGIBLE")
	for _, p := range res.Parties {
		fmt.Fprintf(tw, "%s\t%d\t%.2f%%\t%.1f\t%d\t%d\t%d\t%t\n",
			p.ID, p.SecondVotes, 100*p.VoteShare, p.ProportionalShare,
			p.DirectMandates, p.FloorSum, p.NationalTotal, p.Eligible)
	}

	fmt.Fprintln(tw, "\nPARTY\tSTATE\tLIST\tDIRECT\tFLOOR\tSEATS\tOVERHANG\tLEVELING")
	for _, r := range res.Breakdown {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			r.Party, r.State, r.ListSeats, r.DirectMandates, r.Floor, r.Seats, r.Overhang, r.Leveling)
	}

	if len(res.Coalitions) > 0 {
		fmt.Fprintln(tw, "\nCOALITION\tSEATS\tMAJORITY\tMARGIN\tRESULT")
		for _, c := range res.Coalitions {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%+d\t%s\n", c.Name, c.Seats, c.Majority, c.Margin, c.Label)
		}
	}

	return tw.Flush()
}
