// Package main provides the nsfetl command-line tool.
package main

import (
	"github.com/WHOIGit/nsf-oce-topics/internal/cli"
)

func main() {
	cli.Execute()
}
