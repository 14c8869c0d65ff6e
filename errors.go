package microcoso

import "github.com/microcoso/microcoso/internal/pipeline"

// Sentinel errors for parser construction.
var (
	ErrUnknownStyle = pipeline.ErrUnknownStyle
)
