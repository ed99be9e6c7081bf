/*
Package cssom provides the front-end neutral object model of stylesheets.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. For the
styling engine, a stylesheet is just an ordered list of rules, each
consisting of selector text, the raw text of its declarations and an
optional list of media conditions. Compiling selectors, parsing property values and
computing the cascade is left to other packages (see packages selector, css
and cascade).

There are many CSS parsers around, each with its own idea of how a
stylesheet should be represented. CSS handling is de-coupled by introducing
the interfaces StyleSheet, Rule and Frontend. Concrete implementations may
be found in sub-packages: tdewolffadapter is an error-tolerant default,
douceuradapter a stricter alternative which is able to extract stylesheets
from HTML or SVG documents.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
