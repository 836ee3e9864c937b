package main

import "github.com/ghostink/ghostink/cmd/ghostink"

func main() { ghostink.Execute() }
