package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "format [file]",
		Short: "Print stylesheets in canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFormat,
	}
	c.Flags().Bool("source-urls", false, "write source map directives")
	return c
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}
	name, text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	sheets, err := loadStylesheets(cfg, name, text)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, sheet := range sheets {
		if err = sheet.ToCSS(out, cfg.SourceURLs); err != nil {
			return errors.Wrap(err, "cannot write output")
		}
		if _, err = fmt.Fprintln(out); err != nil {
			return errors.Wrap(err, "cannot write output")
		}
	}
	return nil
}
