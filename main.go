package main

import "github.com/Manu343726/power-instruction-analyzer/cmd"

func main() {
	cmd.Execute()
}
