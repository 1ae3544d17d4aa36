package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/content"
)

func newContentCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect page content",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "dump",
			Short: "Print the content as YAML (the built-in page unless --content is set)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				site, err := loadSite(cmd, opts)
				if err != nil {
					return err
				}
				data, err := content.Dump(site)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Validate the content file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				site, err := loadSite(cmd, opts)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %q with %d projects and %d skills\n",
					site.Name, len(site.Projects), len(site.About.Skills))
				return nil
			},
		},
	)
	return cmd
}

func loadSite(cmd *cobra.Command, opts *rootOptions) (content.Site, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return content.Site{}, err
	}
	return content.Load(cfg.ContentPath)
}
