package sitecapture

import (
	"log"
	"os"
)

// Logger receives browser errors and general messages unless WithLogf
// replaces it. The command also uses it to report a failed run.
var Logger = log.New(os.Stderr, "sitecapture ", log.LstdFlags)

// LogFunc is the common logging func type.
type LogFunc = func(string, ...interface{})
