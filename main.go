package main

import "github.com/theirongolddev/carerev/cmd"

func main() {
	cmd.Execute()
}
