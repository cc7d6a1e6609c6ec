/*
Package media implements media queries, as found in the prelude of @media and
@import rules.

A media query list is a comma separated list of media queries. Each query is
a media type and/or a conjunction of media feature expressions. Expressions
are a closed set of types, one per media feature of Media Queries Level 4
(plus the legacy -webkit-transform-3d). Range features (width, resolution,
…) carry a Range with two independently optional bounds; discrete features
(orientation, hover, …) carry a keyword.

Both the min-/max- prefix syntax and the range syntax of Level 4 are
accepted:

    (min-width: 30em)   (width >= 30em)   (30em <= width < 60em)

Serialization is canonical: a range is written with min-/max- prefixes where
possible, else in range syntax.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package media

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'csskit.media'.
func tracer() tracing.Trace {
	return tracing.Select("csskit.media")
}
