// ABOUTME: Cobra command tree: the interactive viewer plus info, page, and version
// ABOUTME: Commands share persistent flags and the setup helpers

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pdfview-go/internal/document"
	"github.com/mauromedda/pdfview-go/internal/keybindings"
	"github.com/mauromedda/pdfview-go/internal/mode/interactive/btea"
	"github.com/mauromedda/pdfview-go/internal/mode/print"
	"github.com/mauromedda/pdfview-go/pkg/tui/image"
)

func newRootCmd() *cobra.Command {
	var args cliArgs

	root := &cobra.Command{
		Use:   "pdfview [document]",
		Short: "Single-page document viewer for the terminal",
		Long: `pdfview shows one page of a PDF, an image directory, or a CBZ archive at a
time. Arrow keys or a horizontal mouse swipe turn pages; t toggles the
light and dark themes.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			return runView(args, positional)
		},
	}
	bindFlags(root, &args)

	root.AddCommand(
		newInfoCmd(&args),
		newPageCmd(&args),
		newVersionCmd(),
	)
	return root
}

func runView(args cliArgs, positional []string) error {
	if err := requireTerminal(); err != nil {
		return err
	}
	cfg, err := loadConfig(args, positional)
	if err != nil {
		return err
	}
	logs, err := setupLogging(cfg, true)
	if err != nil {
		return err
	}
	defer logs.Close()

	proto, err := image.ParseProtocol(args.protocol)
	if err != nil {
		return err
	}
	keys, err := keybindings.New(cfg.Keys)
	if err != nil {
		return fmt.Errorf("invalid keys config: %w", err)
	}
	ctrl, store := setupTheme(cfg)
	defer store.Close()

	cols, _ := terminalSize()
	return btea.Run(btea.AppDeps{
		Engine:      document.Auto(engineOptions(cfg)),
		Options:     viewerOptions(cfg),
		Theme:       ctrl,
		Protocol:    proto,
		Keys:        keys,
		CellW:       cfg.Cell.Width,
		CellH:       cfg.Cell.Height,
		InitialCols: cols,
		Version:     version,
	})
}

func newInfoCmd(args *cliArgs) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "info [document]",
		Short: "Print the page count and page sizes of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			cfg, err := loadConfig(*args, positional)
			if err != nil {
				return err
			}
			logs, err := setupLogging(cfg, false)
			if err != nil {
				return err
			}
			defer logs.Close()

			eng, err := document.Select(cfg.Document, engineOptions(cfg))
			if err != nil {
				return err
			}
			return print.Info(context.Background(), eng, cfg.Document, print.Config{OutputFormat: format}, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "text", "output format: text, json or stream-json")
	return cmd
}

func newPageCmd(args *cliArgs) *cobra.Command {
	var (
		page  int
		scale float64
	)
	cmd := &cobra.Command{
		Use:   "page [document]",
		Short: "Render one page straight to the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			cfg, err := loadConfig(*args, positional)
			if err != nil {
				return err
			}
			logs, err := setupLogging(cfg, false)
			if err != nil {
				return err
			}
			defer logs.Close()

			proto, err := image.ParseProtocol(args.protocol)
			if err != nil {
				return err
			}
			eng, err := document.Select(cfg.Document, engineOptions(cfg))
			if err != nil {
				return err
			}

			cols, rows := terminalSize()
			if scale <= 0 {
				scale = viewerOptions(cfg).Scale.For(cols * cfg.Cell.Width)
			}
			return print.Page(context.Background(), eng, cfg.Document, page, print.Config{
				Scale:    scale,
				Protocol: proto,
				// Leave a row for the shell prompt.
				Box: image.Box{Cols: cols, Rows: max(rows-1, 1), CellW: cfg.Cell.Width, CellH: cfg.Cell.Height},
			}, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number (1-based)")
	cmd.Flags().Float64Var(&scale, "scale", 0, "render scale (default: responsive scale for the terminal width)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pdfview %s (%s) built %s\n", version, commit, date)
		},
	}
}
