package rope

import "strings"

// Tree structure constants
const (
	// MaxChildren is the maximum children per internal node.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum chunks in a leaf node.
	MaxChunksPerLeaf = 4
)

// Node represents a node in the rope B+ tree.
// Leaf nodes (height == 0) contain text chunks.
// Internal nodes (height > 0) contain child node references.
type Node struct {
	height  uint8       // 0 for leaves, >0 for internal
	summary TextSummary // Aggregated metrics for entire subtree

	// Internal node fields (height > 0)
	children       []*Node
	childSummaries []TextSummary // Per-child summaries for seeking

	// Leaf node fields (height == 0)
	chunks []Chunk
}

func newLeafNode(chunks []Chunk) *Node {
	n := &Node{chunks: chunks}
	for _, c := range chunks {
		n.summary = n.summary.Add(c.Summary())
	}
	return n
}

func newInternalNode(children []*Node) *Node {
	n := &Node{
		height:         children[0].height + 1,
		children:       children,
		childSummaries: make([]TextSummary, len(children)),
	}
	for i, child := range children {
		n.childSummaries[i] = child.summary
		n.summary = n.summary.Add(child.summary)
	}
	return n
}

// IsLeaf returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.height == 0
}

// Len returns the byte length of text in this subtree.
func (n *Node) Len() ByteOffset {
	return n.summary.Bytes
}

// buildTree packs chunks into leaves and then groups nodes level by level
// until a single root remains. Every leaf sits at the same depth.
func buildTree(chunks []Chunk) *Node {
	if len(chunks) == 0 {
		return newLeafNode(nil)
	}

	nodes := make([]*Node, 0, len(chunks)/MaxChunksPerLeaf+1)
	for i := 0; i < len(chunks); i += MaxChunksPerLeaf {
		end := min(i+MaxChunksPerLeaf, len(chunks))
		nodes = append(nodes, newLeafNode(chunks[i:end:end]))
	}

	for len(nodes) > 1 {
		parents := make([]*Node, 0, len(nodes)/MaxChildren+1)
		for i := 0; i < len(nodes); i += MaxChildren {
			end := min(i+MaxChildren, len(nodes))
			parents = append(parents, newInternalNode(nodes[i:end:end]))
		}
		nodes = parents
	}

	return nodes[0]
}

// lineStart returns the byte offset at which line `line` begins, that is
// the byte following the line-th newline of the subtree. The caller
// guarantees 0 < line <= n.summary.Lines.
func (n *Node) lineStart(line uint32) ByteOffset {
	var offset ByteOffset

	for !n.IsLeaf() {
		idx := len(n.children) - 1
		for i, s := range n.childSummaries {
			if line <= s.Lines {
				idx = i
				break
			}
			line -= s.Lines
			offset += s.Bytes
		}
		n = n.children[idx]
	}

	for _, c := range n.chunks {
		if line <= c.summary.Lines {
			return offset + ByteOffset(c.Newlines().LineStart(line))
		}
		line -= c.summary.Lines
		offset += ByteOffset(c.Len())
	}
	return offset
}

// appendTo appends all text in this subtree to the builder.
func (n *Node) appendTo(sb *strings.Builder) {
	if n.IsLeaf() {
		for _, c := range n.chunks {
			sb.WriteString(c.String())
		}
		return
	}
	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// appendRange appends text in the byte range [start, end) of this subtree.
func (n *Node) appendRange(sb *strings.Builder, start, end ByteOffset) {
	if start >= end {
		return
	}

	var offset ByteOffset
	if n.IsLeaf() {
		for _, c := range n.chunks {
			cEnd := offset + ByteOffset(c.Len())
			if cEnd > start && offset < end {
				lo := int(max(start, offset) - offset)
				hi := int(min(end, cEnd) - offset)
				sb.WriteString(c.String()[lo:hi])
			}
			if cEnd >= end {
				return
			}
			offset = cEnd
		}
		return
	}

	for i, child := range n.children {
		cEnd := offset + n.childSummaries[i].Bytes
		if cEnd > start && offset < end {
			child.appendRange(sb, max(start, offset)-offset, min(end, cEnd)-offset)
		}
		if cEnd >= end {
			return
		}
		offset = cEnd
	}
}
