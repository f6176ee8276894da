package main

import (
	"github.com/spf13/cobra"

	"github.com/gompdf/danfe/internal/logger"
)

func newCCeCmd(a *app) *cobra.Command {
	var output, logo string

	cmd := &cobra.Command{
		Use:   "cce <evento.xml>",
		Short: "Render a CC-e correction letter into a DACCe",
		Long: `Render the DACCe of an authorized correction letter event. The issuer
block is taken from the emitter section of the config file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if logo != "" {
				a.cfg.Logo = logo
			}
			if a.cfg.Title == "DANFE" {
				a.cfg.Title = "DACCe"
			}
			if output == "" {
				output = outputFor(args[0])
			}
			if err := a.converter().ConvertCCeFile(args[0], output); err != nil {
				return err
			}
			logger.Info("wrote", "output", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PDF path")
	cmd.Flags().StringVar(&logo, "logo", "", "logo file, URL or base64")
	return cmd
}
