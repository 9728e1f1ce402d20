/*
Package source provides a read-only view onto externally owned tag
descriptions, from which a document tree is built.

A Tag has a name, attributes and a payload. The payload is either an ordered
sequence of child tags or a text string, never both. Payload is a closed type:
clients cannot add variants, they discriminate with Match:

    var kids []source.Tag
    var text string
    switch m := tag.Payload().Match(); m {
    case m.Children(&kids):
        …
    case m.Text(&text):
        …
    }

Two kinds of tags are provided: literal tags, constructed in code with
T and Txt, and tags wrapping a parsed HTML tree (FromHTML).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package source
