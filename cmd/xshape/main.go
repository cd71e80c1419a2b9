// Command xshape evaluates rectangle and line algebra from the command
// line.
package main

import "deedles.dev/xshape/internal/cli"

func main() {
	cli.Execute(cli.NewRootCommand())
}
