// cmd/replay/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go-brick-breaker/internal/replay"
)

func main() {
	deltaTime := flag.Float64("dt", 1000.0/60, "Milliseconds passed to each Update")
	verbose := flag.Bool("v", false, "List every recorded command")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file.replay\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	l, err := replay.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("run %s: %d frames, %d commands\n", l.Header.RunID, l.Header.Frames, len(l.Commands))
	if *verbose {
		for _, c := range l.Commands {
			fmt.Printf("  frame %6d  %s\n", c.Frame, c.Command)
		}
	}

	game, err := replay.Run(l, *deltaTime)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(game.Snapshot())
}
