//go:build !unix

package main

import "os"

var resumeSignals []os.Signal
