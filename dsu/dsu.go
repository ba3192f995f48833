package dsu

// DSU tracks a partition of the elements 0..n-1 into disjoint sets.
type DSU struct {
	parent []int
	size   []int
	// count is the number of distinct components.
	count int
}

// New returns a DSU with n singleton components.
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

// Len returns the number of elements.
func (d *DSU) Len() int { return len(d.parent) }

// Count returns the number of distinct components.
func (d *DSU) Count() int { return d.count }

// Find returns the root of the component containing x, compressing the
// path as it walks.
func (d *DSU) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Second pass: point everything on the path straight at the root.
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}
	return root
}

// Union merges the components containing x and y.
// Reports whether a merge actually happened.
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	// Attach the smaller component under the larger root.
	if d.size[rx] < d.size[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	d.count--
	return true
}

// Size returns the size of the component containing x.
func (d *DSU) Size(x int) int { return d.size[d.Find(x)] }

// ComponentSizes returns the size of every component, in no particular
// order. Complexity: O(n α(n)).
func (d *DSU) ComponentSizes() []int {
	sizes := make([]int, 0, d.count)
	for i := range d.parent {
		if d.Find(i) == i {
			sizes = append(sizes, d.size[i])
		}
	}
	return sizes
}
