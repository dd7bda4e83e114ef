//go:build unix

package main

import (
	"os"
	"syscall"
)

// SIGCONT arrives when a stopped job is brought back with fg.
var resumeSignals = []os.Signal{syscall.SIGCONT}
