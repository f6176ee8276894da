package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gompdf/danfe/internal/batch"
	"github.com/gompdf/danfe/internal/config"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		input, output, kind string
		jobs                int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Render every XML of a directory",
		Long: `Batch renders each *.xml of the input directory into a PDF of the same
name in the output directory. A document that fails is reported and the
others are still rendered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if input != "" {
				cfg.InputDir = input
			}
			if output != "" {
				cfg.OutputDir = output
			}
			if kind != "" {
				cfg.Kind = config.Kind(kind)
			}
			if jobs > 0 {
				cfg.MaxConcurrency = jobs
			}
			cfg.Debug = cfg.Debug || a.verbose
			if err := cfg.Validate(); err != nil {
				return err
			}

			runner, err := batch.NewRunner(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			results, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(w, "FAIL %s: %v\n", r.Path, r.Err)
					continue
				}
				fmt.Fprintf(w, "ok   %s -> %s (%d pages)\n", r.Path, r.Output, r.Pages)
			}
			if failed := batch.Failed(results); len(failed) > 0 {
				return fmt.Errorf("%d of %d documents failed", len(failed), len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input directory (config input_dir)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (config output_dir)")
	cmd.Flags().StringVar(&kind, "kind", "", "document kind: danfe or cce")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "documents rendered at once")
	return cmd
}
