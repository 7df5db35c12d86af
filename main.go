package main

import "save-editor/cmd"

func main() {
	cmd.Execute()
}
