package main

import "github.com/SionoiS/dit/cmd/dit/cmd"

func main() {
	cmd.Execute()
}
