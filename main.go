package main

import "github.com/jdlms/gcz-explorer/cmd"

func main() {
	cmd.Execute()
}
