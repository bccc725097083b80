package main

import "github.com/josephlewis42/esh/cmd"

func main() {
	cmd.Execute()
}
