package postprocess

import "errors"

// ErrNoPath is an internal sentinel used when the exact local-graph search
// finds the sink unreachable; callers see it only as a skipped repair, never
// as a returned error.
var ErrNoPath = errors.New("postprocess: no path within window")
