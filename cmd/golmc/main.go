// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/golmc/emulator"
	"github.com/ezrec/golmc/lmc"
)

func main() {
	var input string
	var output string
	var comment string
	var verbose bool

	flag.StringVar(&input, "i", "-", "Input values")
	flag.StringVar(&output, "o", "-", "Output values")
	flag.StringVar(&comment, "m", "#", "Comment delimiter")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: Expected a single assembly source file", os.Args[0])
	}

	name := flag.Arg(0)
	inf, err := os.Open(name)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}
	defer inf.Close()

	asm := &lmc.Assembler{CommentDelimiter: comment}
	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose

	if input == "-" {
		emu.Input = os.Stdin
	} else {
		inp, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inp.Close()
		emu.Input = inp
	}

	if output == "-" {
		emu.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Output = ouf
	}

	emu.Reset()
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			log.Fatal(err)
		}
	}
}
