package main

import "Montagsmaler/cmd"

func main() {
	cmd.Execute()
}
