package main

import "github.com/devffelix/selfbank/cmd/sb/root"

func main() {
	root.Execute()
}
