package main

import "github.com/gevulot-network/gevulot-go/internal/cli"

func main() {
	cli.Execute()
}
