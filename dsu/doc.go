// Package dsu implements a disjoint-set union (union-find) over dense
// integer elements, with path compression and per-component size
// tracking. Complexity of Find/Union is effectively O(α(n)).
package dsu
