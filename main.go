// Package main is the entry point for the cricmetrics CLI tool, which reads
// ball-by-ball cricket logs and measures what happens after a boundary.
package main

import "github.com/pable/go-cricket-metrics/cmd"

func main() {
	cmd.Execute()
}
