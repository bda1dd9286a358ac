package main

import (
	"github.com/NVIDIA/hashver/pkg/cli"
)

func main() {
	cli.Execute()
}
