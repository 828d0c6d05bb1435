// Package junction groups points in integer 3-D space by mutual proximity:
// the closest unconnected pair is joined first, again and again, until either
// every point belongs to one group or a fixed number K of nearest pairs has
// been used up.
//
// What's inside:
//
//	point/     - Point (x, y, z int64) and a line-oriented loader
//	pairwise/  - every unordered pair with its exact squared distance
//	topk/      - fixed-capacity max-heap keeping the K smallest of a stream
//	linkset/   - union-find whose groups can be enumerated via a circular chain
//	proximity/ - the Kruskal-style driver: rank pairs, merge, report
//	config/    - run limits (max points, K, groups in the product) from YAML
//	cmd/junction/ - command-line front end
//
// Quick example:
//
//	pts, _ := point.ParseFile("points.txt", config.DefaultMaxPoints)
//	span, _ := proximity.Span(pts)                              // pair that connects everything
//	groups, _ := proximity.TopGroups(pts, proximity.WithPairLimit(1000))
//	fmt.Println(span.XProduct, groups.Product)
//
// Everything runs in memory, single-threaded, once per call. Squared distances
// keep the arithmetic exact; no square root is ever taken.
package junction
