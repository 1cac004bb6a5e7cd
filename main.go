package main

import (
	"os"
	"os/signal"

	"github.com/VoxDroid/gitexplore/cmd"
)

func main() {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		os.Exit(cmd.ExitInterrupt)
	}()

	os.Exit(cmd.Execute())
}
