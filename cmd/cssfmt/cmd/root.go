// Package cmd implements the commands of cssfmt.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the cssfmt command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cssfmt",
		Short: "CSS stylesheet formatter",
		Long: `cssfmt parses CSS stylesheets and prints them in canonical form
or as a tree of rules. Parsing stops at the first error, which is reported
with its line and column.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "config file path")
	root.PersistentFlags().Int("line-offset", 0, "number of lines preceding the stylesheet, for error locations")
	root.PersistentFlags().Bool("validate-selectors", true, "reject selectors which cannot be compiled")
	root.PersistentFlags().Bool("html", false, "input is an HTML document; process its <style> elements")
	root.AddCommand(newFormatCmd(), newTreeCmd())
	return root
}

// Execute runs the cssfmt command line.
func Execute() error {
	return NewRootCmd().Execute()
}
