package importer

import (
	"strconv"
	"strings"

	"github.com/nikbrunner/bmx/internal/model"
	"golang.org/x/net/html"
)

// none marks a missing parent or sibling index.
const none = -1

// element is one element node of a parsed document.
type element struct {
	node   *html.Node
	tag    string
	parent int // enclosing element, none at the top
	prev   int // previous element sibling, none when first
}

// document indexes the element nodes of a parsed page in document order.
// Ancestor and sibling lookups are index walks over the elems slice, so an
// element's parent and previous sibling always have a smaller index.
type document struct {
	elems []element
}

// newDocument indexes all element nodes under root.
func newDocument(root *html.Node) *document {
	d := &document{}

	var walk func(n *html.Node, parent int)
	walk = func(n *html.Node, parent int) {
		prev := none
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				// Text, comments and doctype carry no structure.
				continue
			}
			idx := len(d.elems)
			d.elems = append(d.elems, element{
				node:   c,
				tag:    strings.ToLower(c.Data),
				parent: parent,
				prev:   prev,
			})
			walk(c, idx)
			prev = idx
		}
	}
	walk(root, none)

	return d
}

// byTag returns indices of all elements with the given tag, in document order.
func (d *document) byTag(tag string) []int {
	var result []int
	for i := range d.elems {
		if d.elems[i].tag == tag {
			result = append(result, i)
		}
	}
	return result
}

// closest returns the nearest element with the given tag, starting with i
// itself and walking up through its ancestors.
func (d *document) closest(i int, tag string) int {
	for i != none {
		if d.elems[i].tag == tag {
			return i
		}
		i = d.elems[i].parent
	}
	return none
}

// prev returns the previous element sibling of i.
func (d *document) prev(i int) int {
	if i == none {
		return none
	}
	return d.elems[i].prev
}

// folderChain returns the ids of the folder headings enclosing element i,
// ordered from the outermost to the immediate parent.
//
// A heading owns the list that directly follows it, so each step finds the
// enclosing <dl> and takes the element just before it.
func (d *document) folderChain(i int) []model.ItemID {
	var chain []model.ItemID
	for {
		dl := d.closest(i, "dl")
		if dl == none {
			break
		}
		heading := d.prev(dl)
		if heading == none {
			break
		}
		chain = append(chain, d.itemID(heading))
		i = heading
	}

	// Collected leaf to root.
	for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
		chain[l], chain[r] = chain[r], chain[l]
	}
	return chain
}

func (d *document) itemID(i int) model.ItemID {
	return model.NewItemID(d.text(i), d.addDate(i))
}

// text returns the trimmed text content of element i.
func (d *document) text(i int) string {
	return getTextContent(d.elems[i].node)
}

// attr returns the value of an attribute and whether it was present.
func (d *document) attr(i int, key string) (string, bool) {
	return getAttr(d.elems[i].node, key)
}

// addDate reads the add_date attribute. Missing or unparsable values are 0.
func (d *document) addDate(i int) int64 {
	raw, ok := d.attr(i, "add_date")
	if !ok {
		return 0
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return ts
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) (string, bool) {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val, true
		}
	}
	return "", false
}
