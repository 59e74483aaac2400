// Package huffman implements a tree-based static Huffman codec over
// 256-symbol (whole-byte) alphabets: frequency count, tree construction
// via a priority queue, recursive code assignment, a self-describing
// serialized tree prefix, and a linear-scan decode loop.
package huffman

import (
	"container/heap"

	"github.com/glampert/bytecodec"
)

const (
	maxSymbols = 256
	poolSize   = maxSymbols + 512 // 768: 256 leaves plus headroom for inner nodes
	sentinel   = -1
)

// node is one entry of the fixed pool backing a tree. Indices 0..255 are
// reserved for leaves whose symbol equals the index; indices 256..767
// hold inner nodes in allocation order. A node is a leaf iff both left
// and right are sentinel, and "in use" iff frequency is not sentinel.
//
// The child-index fields store real pool indices directly.
type node struct {
	frequency   int
	left, right int
	symbol      int
	code        bytecodec.Code
}

// tree owns the fixed node pool for one encode or decode pass.
type tree struct {
	nodes     [poolSize]node
	nextInner int
	root      int
}

func newTree() *tree {
	this := &tree{nextInner: maxSymbols}
	for i := 0; i < maxSymbols; i++ {
		this.nodes[i] = node{frequency: sentinel, left: sentinel, right: sentinel, symbol: i}
	}
	for i := maxSymbols; i < poolSize; i++ {
		this.nodes[i] = node{frequency: sentinel, left: sentinel, right: sentinel, symbol: sentinel}
	}
	return this
}

func (this *tree) isLeaf(i int) bool {
	return this.nodes[i].left == sentinel && this.nodes[i].right == sentinel
}

func (this *tree) inUse(i int) bool {
	return this.nodes[i].frequency != sentinel
}

// allocInner returns the index of the first unused slot in [256, 768).
// Nodes are only ever allocated and never freed within one build, so
// this scan always lands on nextInner; tracking it directly is
// equivalent to, and cheaper than, rescanning from 256 every time.
func (this *tree) allocInner() int {
	for this.nextInner < poolSize && this.inUse(this.nextInner) {
		this.nextInner++
	}
	if this.nextInner >= poolSize {
		bytecodec.Fatal("huffman: inner-node pool exhausted")
	}
	idx := this.nextInner
	this.nextInner++
	return idx
}

// buildFrequencies marks one leaf per distinct byte value present in
// block as in-use and tallies its frequency. Returns the number of
// distinct symbols observed.
func (this *tree) buildFrequencies(block []byte) int {
	count := 0
	for _, b := range block {
		n := &this.nodes[b]
		if n.frequency == sentinel {
			n.frequency = 1
			count++
		} else {
			n.frequency++
		}
	}
	return count
}

// queueEntry is one item of the priority queue used to merge leaves
// (and, as the merge proceeds, inner nodes) into a tree. seq breaks ties
// between equal frequencies in insertion order, giving a deterministic
// tree shape for a given input.
type queueEntry struct {
	index     int
	frequency int
	seq       int
}

type priorityQueue []queueEntry

func (this priorityQueue) Len() int { return len(this) }
func (this priorityQueue) Less(i, j int) bool {
	if this[i].frequency != this[j].frequency {
		return this[i].frequency < this[j].frequency
	}
	return this[i].seq < this[j].seq
}
func (this priorityQueue) Swap(i, j int) { this[i], this[j] = this[j], this[i] }
func (this *priorityQueue) Push(x interface{}) {
	*this = append(*this, x.(queueEntry))
}
func (this *priorityQueue) Pop() interface{} {
	old := *this
	n := len(old)
	item := old[n-1]
	*this = old[:n-1]
	return item
}

// build constructs the Huffman tree over the in-use leaves and returns
// the root's pool index. count is the number of in-use leaves, as
// returned by buildFrequencies; it must be >= 1.
func (this *tree) build(count int) int {
	if count == 0 {
		bytecodec.Fatal("huffman: cannot build a tree with no symbols")
	}

	pq := make(priorityQueue, 0, count)
	seq := 0
	for i := 0; i < maxSymbols; i++ {
		if this.inUse(i) {
			pq = append(pq, queueEntry{index: i, frequency: this.nodes[i].frequency, seq: seq})
			seq++
		}
	}
	heap.Init(&pq)

	if pq.Len() == 1 {
		return pq[0].index
	}

	for pq.Len() >= 2 {
		a := heap.Pop(&pq).(queueEntry)
		b := heap.Pop(&pq).(queueEntry)

		idx := this.allocInner()
		this.nodes[idx].frequency = a.frequency + b.frequency
		this.nodes[idx].left = a.index
		this.nodes[idx].right = b.index

		heap.Push(&pq, queueEntry{index: idx, frequency: this.nodes[idx].frequency, seq: seq})
		seq++
	}

	return pq[0].index
}

// assignCodes walks the tree depth-first from the root, assigning each
// node the code formed by appending its own bit to its parent's code.
// The root itself receives a 1-bit code, since the recursion appends a
// bit at every level including the first.
func (this *tree) assignCodes(idx int, parent bytecodec.Code, bit int) {
	n := &this.nodes[idx]
	n.code = parent.Append(bit)

	if !this.isLeaf(idx) {
		this.assignCodes(n.left, n.code, 0)
		this.assignCodes(n.right, n.code, 1)
	}
}

// maxLeafCodeLength returns the longest code assigned to any in-use
// leaf, or 0 if no leaf is in use.
func (this *tree) maxLeafCodeLength() int {
	max := 0
	for i := 0; i < maxSymbols; i++ {
		if this.inUse(i) && int(this.nodes[i].code.Length) > max {
			max = int(this.nodes[i].code.Length)
		}
	}
	return max
}

// FindLeaf performs a depth-first search from root for the first leaf
// whose assigned code equals query, returning its symbol and true, or
// (0, false) if no leaf matches. Used only by this package's tests.
func (this *tree) FindLeaf(root int, query bytecodec.Code) (symbol int, ok bool) {
	if this.isLeaf(root) {
		if this.nodes[root].code.Equal(query) {
			return this.nodes[root].symbol, true
		}
		return 0, false
	}

	if s, ok := this.FindLeaf(this.nodes[root].left, query); ok {
		return s, true
	}
	return this.FindLeaf(this.nodes[root].right, query)
}
