package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/npillmayer/csskit/cssom"
	"github.com/npillmayer/csskit/htmlstyles"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

// readInput reads the file named by the first argument, or stdin if there
// is none or it is "-".
func readInput(cmd *cobra.Command, args []string) (name string, text string, err error) {
	var r io.Reader = cmd.InOrStdin()
	name = "<stdin>"
	if len(args) > 0 && args[0] != "-" {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return name, "", errors.Wrap(err, "cannot open input")
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return name, "", errors.Wrapf(err, "cannot read %s", name)
	}
	return name, string(b), nil
}

// loadStylesheets parses the input, either as a stylesheet or as an HTML
// document with <style> elements.
func loadStylesheets(cfg *Config, name, text string) ([]*cssom.Stylesheet, error) {
	opts := []cssom.Option{
		cssom.LineOffset(cfg.LineOffset),
		cssom.ValidateSelectors(cfg.ValidateSelectors),
	}
	if !cfg.HTML {
		sheet, err := cssom.Parse(text, opts...)
		if err != nil {
			return nil, errors.Wrap(err, name)
		}
		return []*cssom.Stylesheet{sheet}, nil
	}
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, errors.Wrapf(err, "%s: invalid HTML", name)
	}
	styles, err := htmlstyles.ExtractStyleElements(doc, opts...)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	sheets := make([]*cssom.Stylesheet, len(styles))
	for i, s := range styles {
		sheets[i] = s.Sheet
	}
	return sheets, nil
}
