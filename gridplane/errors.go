package gridplane

import "errors"

// ErrNoSuchLayer is returned when a 3-D query names a layer outside [0,L).
var ErrNoSuchLayer = errors.New("gridplane: layer out of range")
