// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package mpoly

// heapNode is one candidate product within an exponent heap, identified by
// indices into the two operand term lists.
type heapNode struct {
	// Packed exponent of the candidate product, owned by this node.
	exp []uint64
	// Operand term indices
	i, j uint
}

// expHeap is a binary max-heap of candidate products keyed by packed exponent
// under the monomial ordering.  It drives the Johnson multiplication kernel,
// the Monagan-Pearce division kernel and the heap square root, all of which
// enumerate an implicit sum of products in descending exponent order without
// materialising it.
type expHeap struct {
	l     *layout
	nodes []heapNode
}

func newExpHeap(l *layout, capacity uint) *expHeap {
	return &expHeap{l, make([]heapNode, 0, capacity)}
}

func (h *expHeap) len() uint {
	return uint(len(h.nodes))
}

// peek returns the maximal exponent currently on the heap.
func (h *expHeap) peek() []uint64 {
	return h.nodes[0].exp
}

// push inserts a candidate product, taking ownership of the exponent slice.
func (h *expHeap) push(exp []uint64, i, j uint) {
	h.nodes = append(h.nodes, heapNode{exp, i, j})
	// Sift up
	c := len(h.nodes) - 1
	//
	for c > 0 {
		parent := (c - 1) / 2
		//
		if h.l.cmp(h.nodes[parent].exp, h.nodes[c].exp) >= 0 {
			break
		}
		//
		h.nodes[parent], h.nodes[c] = h.nodes[c], h.nodes[parent]
		c = parent
	}
}

// pop removes and returns the maximal candidate product.
func (h *expHeap) pop() heapNode {
	var (
		top  = h.nodes[0]
		last = len(h.nodes) - 1
	)
	//
	h.nodes[0] = h.nodes[last]
	h.nodes = h.nodes[:last]
	// Sift down
	c := 0
	//
	for {
		left, right := 2*c+1, 2*c+2
		largest := c
		//
		if left < len(h.nodes) && h.l.cmp(h.nodes[left].exp, h.nodes[largest].exp) > 0 {
			largest = left
		}
		//
		if right < len(h.nodes) && h.l.cmp(h.nodes[right].exp, h.nodes[largest].exp) > 0 {
			largest = right
		}
		//
		if largest == c {
			break
		}
		//
		h.nodes[c], h.nodes[largest] = h.nodes[largest], h.nodes[c]
		c = largest
	}
	//
	return top
}
