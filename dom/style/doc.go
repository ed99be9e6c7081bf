/*
Package style holds the value domain of the styling engine.

Overview

A stylesheet declaration like

    padding: 4 8;

ends up as a typed Value: a number, a color, a keyword, a string, a sequence
of numbers or a reference to a custom property (`var(--name)`). Values are
immutable once constructed. Clients inspect them with a matcher:

    var c style.Color
    switch m := v.Match(); m {
    case m.Color(&c):
        …
    case m.None():
        …
    }

Declarations is a fragment of a style, e.g. the declaration block of a single
rule. Function Merge is the one and only place where declaration blocks are
layered onto each other: later layers win.

Style is the result of matching a node against a compiled stylesheet: the
resolved property values, an optional nested style for the "::after"
pseudo-element, and two opaque back-references (the styled node and the
stylesheet which produced the style).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style
