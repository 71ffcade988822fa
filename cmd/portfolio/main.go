// Command portfolio serves the portfolio site and exposes its logo,
// metadata, and preview-card renderers on the command line.
package main

// version is set at build time via ldflags.
var version = "dev"

func main() {
	Execute()
}
