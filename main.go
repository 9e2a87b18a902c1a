package main

import "github.com/KaramelBytes/postpulse/cmd"

func main() {
	cmd.Execute()
}
