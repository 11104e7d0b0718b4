package main

import "github.com/figwing/figwing/cmd"

func main() {
	cmd.Execute()
}
