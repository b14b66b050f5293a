package main

import "github.com/picket-dev/picket/cmd"

func main() {
	cmd.Execute()
}
