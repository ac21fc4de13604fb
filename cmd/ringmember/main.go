package main

import "github.com/ringmembers/ringmembership/cmd/ringmember/cmd"

func main() {
	cmd.Execute()
}
