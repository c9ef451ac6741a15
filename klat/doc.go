// Package klat implements layer assignment: lifting a net's final 2-D tree
// across metal layers via a tree dynamic program that minimizes via count
// and via/edge overflow, committing its choice into a running 3-D occupation
// map (Map3D) so later nets see earlier nets' layer usage.
//
// The DP walks the tree in post order, built directly on the dfs package's
// traversal (the same dfs/bfs combination steiner.Validate already uses to
// check oracle output): each node combines its children's best layer
// choices against the candidate layer of its own edge to its parent via
// viaPenalty, and the best choice is read back top-down from the root.
package klat
