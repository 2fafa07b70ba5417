package main

import "github.com/Rahulchina/Fisher-manan/cmd/angler/root"

func main() {
	root.Execute()
}
