package cmd

import (
	"fmt"

	"github.com/npillmayer/csskit/cssom/cssomdbg"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newTreeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the rule tree of stylesheets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTree,
	}
	c.Flags().Bool("graphviz", false, "output GraphViz DOT instead of text")
	return c
}

func runTree(cmd *cobra.Command, args []string) error {
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
	if len(sheets) == 0 {
		return nil
	}
	sheet := sheets[0]
	for _, s := range sheets[1:] {
		sheet.AppendRules(s)
	}
	out := cmd.OutOrStdout()
	if cfg.GraphViz {
		err = cssomdbg.ToGraphViz(sheet, out)
	} else {
		_, err = fmt.Fprint(out, cssomdbg.Tree(sheet))
	}
	return errors.Wrap(err, "cannot write output")
}
