// Package auditor checks testable property #3 of the routing design: for
// every net's committed route, the union of its two-pin paths is connected
// and spans all declared pins. It is built directly on bfs.BFS over a
// core.Graph assembled from path tiles, the same small-graph idiom
// steiner.Validate uses for oracle output and klat.Assign uses for its tree
// walk.
package auditor
