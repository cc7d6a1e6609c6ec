/*
Package properties parses CSS property declarations.

A declaration is a pair “name: value”, optionally followed by “!important”.
Names are normalized: a vendor prefix (-webkit-, -moz-, …) is split off and
kept separately, and all names except custom property names (“--foo”) are
lower-cased. Values are not interpreted. A value is either one of the
CSS-wide keywords (initial, inherit, unset, revert) or the opaque token
sequence of the specified value, to be parsed later by whoever knows the
property's value grammar.

Declarations are value objects. They are created by a DeclarationParser
and never changed afterwards.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package properties

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'csskit.properties'.
func tracer() tracing.Trace {
	return tracing.Select("csskit.properties")
}
