// SPDX-License-Identifier: MIT

package network

import (
	"strconv"
	"strings"
)

// Path is an ordered sequence of node ids, source first and target last.
type Path []int

// IsSimple reports whether p has no repeated node.
func (p Path) IsSimple() bool {
	seen := make(map[int]struct{}, len(p))
	for _, id := range p {
		if _, ok := seen[id]; ok {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}

// Clone returns a copy of p that shares no storage with it.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Equal reports whether p and q visit the same nodes in the same order.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Index returns the position of id in p, or -1.
func (p Path) Index(id int) int {
	for i, v := range p {
		if v == id {
			return i
		}
	}
	return -1
}

// Key returns a compact string identity usable as a map key.
func (p Path) Key() string {
	var b strings.Builder
	for i, id := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

// String renders p as "0 → 4 → 7".
func (p Path) String() string {
	if len(p) == 0 {
		return "<none>"
	}
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " → ")
}
