//go:build windows

package main

import "os"

// Only Ctrl+C is delivered on Windows.
var interruptSignals = []os.Signal{os.Interrupt}
