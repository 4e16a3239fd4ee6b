package main

import "github.com/Glen-Lee-glitch/blog-auto-made/cmd"

func main() {
	cmd.Run()
}
