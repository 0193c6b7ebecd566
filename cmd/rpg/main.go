package main

import "github.com/BikiniBill/RetroTaskRPGCloud/cmd/rpg/root"

func main() {
	root.Execute()
}
