/*
Package csserr defines the errors of the csskit parsers.

Every error a csskit parser returns is a *csserr.Error. Its Kind is drawn from
a closed set of reasons. Errors of the lexical layer (tokens.Error) are
wrapped with kind Basic; all other kinds are reasons of the rule grammars.
Every error carries the source location of the construct which caused it.

Parsing is fail-fast: a parser returns the first error it encounters and
never tries to recover.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package csserr
