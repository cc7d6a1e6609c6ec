/*
Package cssom provides a typed object model for CSS stylesheets.

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Parse turns
the text of a stylesheet into a Stylesheet holding an ordered list of
rules; every node of the tree renders itself back to canonical CSS.

Overview

The top-level rule list is parsed by a small state machine:

    Start → Imports → Namespaces → Body

@charset may only appear first, @import rules only before anything but
@charset, and @namespace rules only before any other rule except @charset
and @import. @charset and @namespace rules are consumed and not kept in the
rule list; namespaces go into the stylesheet's namespace table instead.

Parsing is fail-fast: the first error aborts the parse of the whole
stylesheet and no partial tree is returned. Every error carries a source
location, see package csserr.

Rules are a closed set of types (StyleRule, CounterStyleRule, MediaRule,
SupportsRule, KeyframesRule, FontFaceRule, PageRule, ImportRule). Clients
switch over them exhaustively:

    switch r := rule.(type) {
    case *cssom.StyleRule:
        …
    default:
        panic(fmt.Sprintf("unknown rule type %T", r))
    }

Property values are not parsed beyond their tokens. Selectors of style
rules are compiled with https://godoc.org/github.com/andybalholm/cascadia,
so style rules can be matched against nodes of a golang.org/x/net/html
parse tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'csskit.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("csskit.cssom")
}
