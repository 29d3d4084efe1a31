// Package main provides the mks binary entry point: a small CLI over
// the dimensional-analysis library for evaluating, converting and
// inspecting SI quantities.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/c360studio/mks/commands"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
