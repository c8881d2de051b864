// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/isasim/isa"
	"github.com/ezrec/isasim/machine"
	"github.com/ezrec/isasim/processor"
)

func main() {
	var program string
	var regCount int
	var memSize int
	var verbose bool
	var list bool
	var defines []string
	var pokes []string

	flag.StringVar(&program, "f", "-", "Program file ('-' for stdin)")
	flag.IntVar(&regCount, "r", 8, "Register count")
	flag.IntVar(&memSize, "m", 64, "Memory size, in cells")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&list, "l", false, "List the instruction set, do not execute")
	flag.Func("D", "Predefine a NAME=VALUE equate (repeatable)", func(arg string) error {
		defines = append(defines, arg)
		return nil
	})
	flag.Func("poke", "Initialize a memory cell, ADDR=VALUE (repeatable)", func(arg string) error {
		pokes = append(pokes, arg)
		return nil
	})

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	proc := processor.New(isa.Default, regCount, memSize)
	proc.Verbose = verbose

	if list {
		table := proc.Table()
		for _, mnemonic := range table.Mnemonics() {
			desc, _ := table.Lookup(mnemonic)
			fmt.Printf("%-8v %v\n", mnemonic, desc.Describe)
		}
		return
	}

	for _, define := range defines {
		name, value, ok := strings.Cut(define, "=")
		if !ok {
			log.Fatalf("-D %v: expected NAME=VALUE", define)
		}
		proc.Predefine(name, value)
	}

	for _, poke := range pokes {
		at, value, ok := strings.Cut(poke, "=")
		if !ok {
			log.Fatalf("-poke %v: expected ADDR=VALUE", poke)
		}
		addr, err := strconv.Atoi(at)
		if err != nil {
			log.Fatalf("-poke %v: %v", poke, err)
		}
		word, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			log.Fatalf("-poke %v: %v", poke, err)
		}
		err = proc.Memory().Write(addr, machine.Word(word))
		if err != nil {
			log.Fatalf("-poke %v: %v", poke, err)
		}
	}

	var text []byte
	var err error
	if program == "-" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(program)
	}
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	proc.OnComplete = func(regs *machine.RegisterFile, mem *machine.Memory) {
		for n, word := range regs.Snapshot() {
			fmt.Printf("r[%d]: %v\n", n, word)
		}
	}
	proc.OnError = func(desc string) {
		log.Printf("%v: %v", program, desc)
	}

	if proc.Load(string(text)).Exec() != nil {
		os.Exit(1)
	}
}
