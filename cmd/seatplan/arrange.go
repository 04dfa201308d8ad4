package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seatplan/arrange"
	"github.com/katalvlaran/seatplan/config"
	"github.com/katalvlaran/seatplan/export"
	"github.com/katalvlaran/seatplan/render"
	"github.com/katalvlaran/seatplan/roster"
)

// Values accepted by --policy.
const (
	policyUniform   = "uniform"
	policyClustered = "clustered"
	policyStrict    = "strict"
	policyCorridor  = "corridor"
)

// arrangeFlags mirror config keys; only flags set on the command line
// override the file.
type arrangeFlags struct {
	input       string
	table       string
	normalize   bool
	rows, cols  int
	corridors   []int
	podiumLeft  bool
	podiumRight bool
	policy      string
	runLength   int
	seed        int64
	outDir      string
	formats     []string
	fontPath    string
	preview     bool
}

func newArrangeCmd(opts *rootOptions) *cobra.Command {
	f := &arrangeFlags{}
	cmd := &cobra.Command{
		Use:   "arrange",
		Short: "Assign the roster to seats and export the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if err = f.apply(cmd, cfg); err != nil {
				return err
			}
			return runArrange(cmd, opts, cfg, f.preview)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "roster file (.csv .txt .xlsx .xlsm .db .sqlite .sqlite3)")
	fl.StringVar(&f.table, "table", "", "sqlite table holding name and tag columns")
	fl.BoolVar(&f.normalize, "normalize-tags", false, "map free-form tag values to male/female/unknown")
	fl.IntVar(&f.rows, "rows", 0, "grid rows")
	fl.IntVar(&f.cols, "cols", 0, "grid columns, corridors included")
	fl.IntSliceVar(&f.corridors, "corridors", nil, "1-based corridor columns, e.g. 4,8")
	fl.BoolVar(&f.podiumLeft, "podium-left", false, "seat one entity left of the podium")
	fl.BoolVar(&f.podiumRight, "podium-right", false, "seat one entity right of the podium")
	fl.StringVarP(&f.policy, "policy", "p", "", "uniform, clustered, strict or corridor")
	fl.IntVar(&f.runLength, "run-length", 0, "clustered run length")
	fl.Int64Var(&f.seed, "seed", 0, "RNG seed; 0 draws a fresh arrangement")
	fl.StringVarP(&f.outDir, "out-dir", "o", "", "output directory")
	fl.StringSliceVar(&f.formats, "formats", nil, "output formats: excel,csv,png")
	fl.StringVar(&f.fontPath, "font", "", "font file for png output")
	fl.BoolVar(&f.preview, "preview", false, "print the names sheet to stdout")

	return cmd
}

// apply copies explicitly set flags into cfg and revalidates it.
func (f *arrangeFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	set := cmd.Flags().Changed
	if set("input") {
		cfg.Input = f.input
	}
	if set("table") {
		cfg.Table = f.table
	}
	if set("normalize-tags") {
		cfg.NormalizeTags = f.normalize
	}
	if set("rows") {
		cfg.Grid.Rows = f.rows
	}
	if set("cols") {
		cfg.Grid.Cols = f.cols
	}
	if set("corridors") {
		cfg.Grid.Corridors = f.corridors
	}
	if set("podium-left") {
		cfg.Grid.PodiumLeft = f.podiumLeft
	}
	if set("podium-right") {
		cfg.Grid.PodiumRight = f.podiumRight
	}
	if set("policy") {
		p := &cfg.Policy
		switch strings.ToLower(f.policy) {
		case policyUniform:
			p.GenderClustered, p.StrictRuns, p.CorridorAlternating = false, false, false
		case policyClustered:
			p.GenderClustered, p.StrictRuns, p.CorridorAlternating = true, false, false
		case policyStrict:
			p.GenderClustered, p.StrictRuns, p.CorridorAlternating = true, true, false
		case policyCorridor:
			p.GenderClustered, p.StrictRuns, p.CorridorAlternating = false, false, true
		default:
			return fmt.Errorf("--policy %q: want %s, %s, %s or %s: %w",
				f.policy, policyUniform, policyClustered, policyStrict, policyCorridor, config.ErrInvalidConfig)
		}
	}
	if set("run-length") {
		cfg.Policy.RunLength = f.runLength
	}
	if set("seed") {
		cfg.Seed = f.seed
	}
	if set("out-dir") {
		cfg.Output.Dir = f.outDir
	}
	if set("formats") {
		cfg.Output.Formats = f.formats
	}
	if set("font") {
		cfg.Output.FontPath = f.fontPath
	}
	return cfg.Validate()
}

// runArrange is the read → assign → render → export pipeline.
func runArrange(cmd *cobra.Command, opts *rootOptions, cfg *config.Config, preview bool) error {
	base, err := opts.logger()
	if err != nil {
		return err
	}
	log := base.With("run", uuid.NewString())
	ctx := cmd.Context()

	r, err := roster.Read(ctx, cfg.Input, cfg.ReadOptions()...)
	if err != nil {
		return err
	}
	g, err := cfg.NewGrid()
	if err != nil {
		return err
	}
	policy := cfg.PlacementPolicy()
	log.Info("arranging", "input", cfg.Input, "entities", r.Len(), "grid", g.String(), "policy", policy.String())

	res, err := arrange.Assign(r, g, policy, cfg.EngineOptions()...)
	if err != nil {
		log.Error("arrangement failed", "error", err)
		return err
	}
	sheet, err := render.Build(res, r, cfg.RenderOptions()...)
	if err != nil {
		return err
	}
	stats, err := render.Summarize(res, r)
	if err != nil {
		return err
	}
	kv := []any{"assigned", stats.Assigned, "empty", stats.Empty, "podium", stats.PodiumSeats}
	for _, tc := range stats.PerTag {
		kv = append(kv, "tag_"+string(tc.Tag), tc.Count)
	}
	log.Info("arranged", kv...)

	if preview {
		if err = render.WriteText(cmd.OutOrStdout(), sheet.Names); err != nil {
			return err
		}
	}

	formats := export.Normalize(cfg.Output.Formats)
	xopts := []export.Option{export.WithLogger(log), export.WithFontPath(cfg.Output.FontPath)}
	for _, job := range []struct {
		table *render.Table
		base  string
	}{
		{sheet.Names, cfg.NamesBase()},
		{sheet.Tags, cfg.TagsBase()},
	} {
		written, err := export.Export(ctx, job.table, formats, job.base, xopts...)
		if err != nil {
			return err
		}
		for _, w := range written {
			if _, err = fmt.Fprintln(cmd.OutOrStdout(), w.Path); err != nil {
				return err
			}
		}
	}
	return nil
}
