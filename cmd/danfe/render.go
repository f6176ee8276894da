package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gompdf/danfe/internal/logger"
)

type renderFlags struct {
	output  string
	layout  string
	receipt string
	logo    string
	title   string
}

func newRenderCmd(a *app) *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render <nfe.xml>...",
		Short: "Render one or more NF-e into a DANFE",
		Long: `Render draws the DANFE of each NF-e given. With a single input the PDF is
written next to it unless --output is set. With several inputs --output is
required and every document is drawn into that one file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyRenderFlags(a, f)
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			c := a.converter()

			if len(args) == 1 {
				out := f.output
				if out == "" {
					out = outputFor(args[0])
				}
				if err := c.ConvertFile(args[0], out); err != nil {
					return err
				}
				logger.Info("wrote", "output", out)
				return nil
			}

			if f.output == "" {
				return fmt.Errorf("--output is required with %d inputs", len(args))
			}
			docs := make([][]byte, len(args))
			for i, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				docs[i] = data
			}

			out, err := os.Create(f.output)
			if err != nil {
				return err
			}
			if err := c.ConvertMany(docs, out); err != nil {
				out.Close()
				os.Remove(f.output)
				return err
			}
			logger.Info("wrote", "output", f.output, "documents", len(docs))
			return out.Close()
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output PDF path")
	cmd.Flags().StringVar(&f.layout, "layout", "", "tax layout: ICMS, ICMS_ST or ICMS_IPI")
	cmd.Flags().StringVar(&f.receipt, "receipt", "", "receipt position: top or bottom")
	cmd.Flags().StringVar(&f.logo, "logo", "", "logo file, URL or base64")
	cmd.Flags().StringVar(&f.title, "title", "", "PDF title")
	return cmd
}

func applyRenderFlags(a *app, f renderFlags) {
	if f.layout != "" {
		a.cfg.Layout = f.layout
	}
	if f.receipt != "" {
		a.cfg.ReceiptPosition = f.receipt
	}
	if f.logo != "" {
		a.cfg.Logo = f.logo
	}
	if f.title != "" {
		a.cfg.Title = f.title
	}
}
