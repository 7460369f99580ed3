package tim

import (
	"log"
	"os"
)

// Warnings is the deprecation/diagnostic sink used by the engine (currently
// just the "!link" macro shim in parser.go). Swap it out or redirect its
// output to silence or capture warnings; the zero value writes to stderr,
// mirroring Python's warnings.warn default behavior in the original engine.
var Warnings = log.New(os.Stderr, "tim: ", 0)
