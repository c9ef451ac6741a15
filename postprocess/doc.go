// Package postprocess implements the repair passes described by the
// routing spec's post-processing component: after stage 2's rip-up/reroute
// loop terminates, it widens the window size and relaxes the history cap
// for a few more targeted passes, solving small residual windows exactly
// with the dijkstra package rather than paying for another maze search.
package postprocess
