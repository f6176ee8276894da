package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gompdf/danfe/internal/config"
	"github.com/gompdf/danfe/internal/logger"
	"github.com/gompdf/danfe/pkg/api"
)

// app holds the state shared by every subcommand
type app struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "danfe",
		Short: "Render NF-e invoices and CC-e letters as PDF",
		Long: `danfe draws the DANFE of authorized NF-e documents and the DACCe of
their correction letters. Settings shared by every command, such as the tax
layout, logo and issuer block, come from an optional YAML config file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetLogger(logger.NewWriterLogger(os.Stderr, a.verbose))
			return a.loadConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newRenderCmd(a),
		newCCeCmd(a),
		newBatchCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) loadConfig() error {
	if a.cfgFile == "" {
		a.cfg = config.NewDefaultConfig()
		return nil
	}
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	logger.Debug("config loaded", "path", a.cfgFile)
	return nil
}

// converter builds the API options from the config, after flag overrides
func (a *app) converter() *api.Converter {
	cfg := a.cfg
	opts := api.DefaultOptions()
	opts.Layout = cfg.Layout
	opts.ReceiptPosition = api.ReceiptPosition(cfg.ReceiptPosition)
	opts.LogoPath = cfg.Logo
	opts.Title = cfg.Title
	opts.Author = cfg.Author
	opts.Debug = cfg.Debug || a.verbose
	opts.MaxConcurrency = cfg.MaxConcurrency
	if e := cfg.Emitter; e.Name != "" {
		opts.Emitter = &api.Emitter{
			Name:     e.Name,
			Address:  e.Address,
			District: e.District,
			City:     e.City,
			State:    e.State,
			Phone:    e.Phone,
		}
	}
	return api.NewWithOptions(opts)
}

// outputFor replaces the extension of input with .pdf
func outputFor(input string) string {
	ext := filepath.Ext(input)
	return input[:len(input)-len(ext)] + ".pdf"
}
