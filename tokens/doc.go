/*
Package tokens implements the lexical layer of csskit.

Tokenization itself is delegated to the CSS3 scanner of the Gorilla toolkit
(github.com/gorilla/css/scanner). Package tokens turns the scanner's raw
tokens into cooked tokens (escapes resolved, numbers converted, blocks
matched) and offers an Input cursor with the operations the rule parsers need:

   - token-by-token advancement with source locations
   - delimiter-bounded sub-parsing (“parse until before '!'”)
   - speculative parsing with full roll-back (Try)
   - parsing the contents of a {}-, ()- or []-block
   - a check for unconsumed trailing tokens

Comments are not handed out as tokens. The scanner scans them for
source-map and source-URL directives, which are available through
Input.SourceMapURL and Input.SourceURL.

The package also contains the writing primitives for canonical serialization
(identifier and string escaping, a Writer with a sticky error).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tokens

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'csskit.tokens'.
func tracer() tracing.Trace {
	return tracing.Select("csskit.tokens")
}
