package main

import "github.com/nfrund/accountadate/cmd/accountadate/cmd"

func main() {
	cmd.Execute()
}
