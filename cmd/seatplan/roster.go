package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seatplan/roster"
)

func newRosterCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster utilities",
	}
	cmd.AddCommand(newRosterGenerateCmd(opts), newRosterShowCmd(opts))
	return cmd
}

func newRosterGenerateCmd(_ *rootOptions) *cobra.Command {
	var (
		count int
		seed  int64
		out   string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic roster as csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 {
				return fmt.Errorf("--count %d must be >= 0", count)
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			r := roster.Generate(count, rand.New(rand.NewSource(seed)))

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return roster.WriteCSV(w, r)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 64, "number of entities")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed; 0 uses the clock")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file; stdout when empty")
	return cmd
}

func newRosterShowCmd(_ *rootOptions) *cobra.Command {
	var normalize bool
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Read a roster file and print id, name and tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ropts []roster.ReadOption
			if normalize {
				ropts = append(ropts, roster.WithNormalizeTags())
			}
			r, err := roster.Read(cmd.Context(), args[0], ropts...)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, e := range r.Entities() {
				if _, err = fmt.Fprintf(w, "%d\t%s\t%s\n", e.ID, e.Name, e.Tag); err != nil {
					return err
				}
			}
			for _, t := range r.Tags() {
				if _, err = fmt.Fprintf(w, "# %s: %d\n", t, r.Count(t)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize-tags", false, "map free-form tag values to male/female/unknown")
	return cmd
}
