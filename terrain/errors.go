package terrain

import "github.com/blazeforge/ember/simerr"

var (
	errInvalidDimensions = simerr.New(simerr.InvalidInput, "terrain: width and height must be positive")
	errHeightmapSize     = simerr.New(simerr.InvalidInput, "terrain: heightmap length does not match width*height")
)
