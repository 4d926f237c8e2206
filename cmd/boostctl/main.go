package main

import "socialboot/cmd/boostctl/root"

func main() {
	root.Execute()
}
