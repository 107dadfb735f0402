package main

import "attractionapi/cmd"

func main() {
	cmd.Execute()
}
