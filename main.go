package main

import "github.com/vaultglass/vaultglass/pkg/cmd/root"

func main() {
	root.Execute()
}
