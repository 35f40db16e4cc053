package main

import "oss-upload-helper/internal/cmd"

func main() {
	cmd.Execute()
}
