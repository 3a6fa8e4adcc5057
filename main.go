package main

import "github.com/theirongolddev/tanklog/cmd"

func main() {
	cmd.Execute()
}
