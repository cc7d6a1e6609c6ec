/*
Package supports implements the conditions of @supports rules.

A condition is a negation, a conjunction or a disjunction of conditions in
parentheses. Inside of parentheses there may be a nested condition, a
declaration, or anything else ("general enclosed"), which is kept as found
in the input and never matches:

    not (display: grid)
    (display: flex) and ((gap: 1em) or (margin: 0))
    selector(a > b)

Mixing 'and' and 'or' on one level without parentheses is an error.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package supports

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'csskit.supports'.
func tracer() tracing.Trace {
	return tracing.Select("csskit.supports")
}
