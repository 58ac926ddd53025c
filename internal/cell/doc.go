/*
Package cell defines the vocabulary shared by the cell store: valid cell
names, the content a user assigns to a cell, and the value derived from it.

Content and Value are closed tagged unions. Content is one of Text, Number
or Formula; Value is one of Text, Number or Error. Text and Number serve as
both, since literal content evaluates to itself.
*/
package cell
