package main

import "github.com/doctorshouse/backend/cmd"

func main() {
	cmd.Execute()
}
