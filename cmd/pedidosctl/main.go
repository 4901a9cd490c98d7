package main

import "github.com/AndresGigant/pedidos-comerciales/internal/cli"

func main() {
	cli.Execute()
}
