package main

import "github.com/Swatkovich/cortexex-sub000/cmd"

func main() {
	cmd.Execute()
}
