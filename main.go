package main

import "doctool/cmd"

func main() {
	cmd.Execute()
}
