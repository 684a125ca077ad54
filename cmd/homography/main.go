package main

import (
	"github.com/MeKo-Tech/homography/cmd/homography/cmd"
)

func main() {
	cmd.Execute()
}
