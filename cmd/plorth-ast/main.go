// Command plorth-ast works with Plorth syntax trees in their JSON
// interchange form, as produced by a parser front end.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
