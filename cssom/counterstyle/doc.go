/*
Package counterstyle implements the @counter-style at-rule.

An @counter-style rule defines a counter style by up to ten descriptors
(system, negative, prefix, suffix, range, pad, fallback, symbols,
additive-symbols and speak-as). Each of them is optional. The record keeps
the descriptors exactly as specified, so that serialization renders only
what the author wrote. Accessors compute the effective value of a
descriptor, substituting the default from CSS Counter Styles Level 3 for
descriptors which were not specified.

A CounterStyle is validated once, when it is created, and cannot be changed
afterwards: every existing CounterStyle is a valid one.

Status

The image symbols of CSS Counter Styles Level 3 are not supported.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package counterstyle

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'csskit.counterstyle'.
func tracer() tracing.Trace {
	return tracing.Select("csskit.counterstyle")
}
