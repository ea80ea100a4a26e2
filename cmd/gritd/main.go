package main

import "gritd/cmd/gritd/root"

func main() {
	root.Execute()
}
