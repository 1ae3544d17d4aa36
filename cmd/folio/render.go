package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/content"
	"folio/internal/ui"
	"folio/internal/ui/markdown"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the whole page without starting the interactive UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 1 || height < 1 {
				return fmt.Errorf("width and height must be positive, got %dx%d", width, height)
			}
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			site, err := content.Load(cfg.ContentPath)
			if err != nil {
				return err
			}
			out := ui.RenderStatic(site, width, height, cfg.Breakpoint, markdown.New(cfg.GlamourStyle))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 100, "page width in columns")
	cmd.Flags().IntVar(&height, "height", 40, "viewport height in rows")
	return cmd
}
