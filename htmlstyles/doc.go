/*
Package htmlstyles connects stylesheets to HTML documents.

It extracts the <style> elements of a golang.org/x/net/html parse tree,
parses them into stylesheets and finds the style rules matching an element
node. Selector matching is done by cascadia.

Conditions of grouping rules (@media, @supports) are not evaluated: style
rules nested in them take part in matching like top-level rules. Clients
which need to filter by media have the media lists at hand in the
stylesheets and in StyleElement.Media.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package htmlstyles

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'csskit.html'.
func tracer() tracing.Trace {
	return tracing.Select("csskit.html")
}
