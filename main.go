package main

import "unique-checker/cmd"

func main() {
	cmd.Execute()
}
