// Package fixtures synthesizes routing inputs for tests, benchmarks, and the
// runnable examples: a rectangular routing region and random nets scattered
// across it. It is test/demo scaffolding only, never imported by the router
// itself.
//
// Grid mirrors the teacher's builder.Grid constructor (fixed row-major
// layout, fail-fast dimension validation); RandomNets mirrors
// builder.RandomSparse's Bernoulli-trial idiom (deterministic *rand.Rand
// seeded once, stable trial order), redirected at sampling net pins instead
// of graph edges.
package fixtures
