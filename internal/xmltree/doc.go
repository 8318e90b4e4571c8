// Package xmltree turns fixed element templates into live XML element chains.
//
// A template is an ordered list of NodeSpec values. Build instantiates one
// element per spec with its attributes in declaration order, and Link nests
// each element as the only child of the one before it. The two steps are kept
// apart so a caller can fill attribute values or hang the chain's head under a
// parent it already owns (for example a list node inside a parsed document)
// before the chain is serialized. Descend walks the other direction, following
// a fixed path of first-matching child elements down from a root.
//
// Tags and attribute names are used verbatim, including namespace prefixes;
// nothing here validates them.
package xmltree
