// Package html ingests HTML fragments into weft node trees.
//
// Every HTML element and text node becomes a weft node; the element
// hierarchy maps to parent/children relations and document order of
// siblings maps to the chain. All wiring goes through the regular
// consistency engine, so an ingested tree satisfies all weft invariants.
package html

import (
	"io"

	"github.com/npillmayer/weft"
	"golang.org/x/net/html"
)

// Elem is the node payload for ingested HTML: the element name for
// elements, the text content for text nodes.
type Elem struct {
	Tag  string
	Text string
}

func (e Elem) String() string {
	if e.Tag != "" {
		return "<" + e.Tag + ">"
	}
	return e.Text
}

// FromReader parses an HTML fragment and mirrors its element and text
// hierarchy as nodes of arena. It returns the handles of the top-level
// nodes, in document order.
func FromReader(arena *weft.Arena[Elem], input io.Reader) ([]weft.Ref, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var roots []weft.Ref
	for _, n := range nodes {
		ref, err := FromNode(arena, n)
		if err != nil {
			return nil, err
		}
		if !ref.IsAbsent() {
			roots = append(roots, ref)
		}
	}
	return roots, nil
}

// FromNode mirrors the subtree below n as nodes of arena and returns the
// handle of the subtree root. Comments, doctypes and other non-content
// nodes are skipped; for a skipped node Absent is returned without error.
//
// Children are attached through the engine: the first child via its parent
// relation, every further child by chaining it to its predecessor, which
// adopts it into the parent's child sequence (parent propagation).
func FromNode(arena *weft.Arena[Elem], n *html.Node) (weft.Ref, error) {
	switch n.Type {
	case html.TextNode:
		return arena.NewNode(Elem{Text: n.Data})
	case html.ElementNode:
		// handled below
	case html.DocumentNode:
		// mirror the first content child, usually <html>
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			ref, err := FromNode(arena, c)
			if err != nil || !ref.IsAbsent() {
				return ref, err
			}
		}
		return weft.Absent, nil
	default:
		return weft.Absent, nil
	}
	ref, err := arena.NewNode(Elem{Tag: n.Data})
	if err != nil {
		return weft.Absent, err
	}
	last := weft.Absent
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		child, err := FromNode(arena, c)
		if err != nil {
			return weft.Absent, err
		}
		if child.IsAbsent() {
			continue
		}
		if last.IsAbsent() {
			err = arena.SetParent(child, ref)
		} else {
			err = arena.SetNext(last, child)
		}
		if err != nil {
			return weft.Absent, err
		}
		last = child
	}
	return ref, nil
}
