package main

import "game-translator/internal/cli"

func main() {
	cli.Execute()
}
