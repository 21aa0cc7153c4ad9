// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/isacodec/isa"
	"github.com/ezrec/isacodec/program"
	"github.com/ezrec/isacodec/symtab"
	"github.com/ezrec/isacodec/translate"
)

// report prints every positioned failure of a pass, then exits.
func report(name string, err error) {
	var errs program.Errors
	if !errors.As(err, &errs) {
		log.Fatalf("%v: %v", name, err)
	}

	bold := color.New(color.Bold).SprintFunc()
	for _, item := range errs {
		log.Printf("%v: %v", bold(name), color.RedString("%v", item))
	}
	os.Exit(1)
}

func main() {
	var profile string
	var symbols string
	var output string
	var lang string
	var workers int
	var verify bool
	var dump bool
	var verbose bool

	flag.StringVar(&profile, "p", isa.Profile32.Name, "ISA profile (isa32, isa16)")
	flag.StringVar(&symbols, "s", "", ".star symbol file to use")
	flag.StringVar(&output, "o", "", "Write the re-encoded image to this file")
	flag.StringVar(&lang, "lang", "", "Message language, overriding the locale")
	flag.IntVar(&workers, "j", 1, "Concurrent workers")
	flag.BoolVar(&verify, "verify", false, "Re-encode the listing and compare with the image")
	flag.BoolVar(&dump, "dump", false, "Dump decoded instructions")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	log.SetFlags(0)

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one image file, got %v", os.Args[0], flag.Args())
	}
	input := flag.Arg(0)

	if len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	prof, err := isa.Lookup(profile)
	if err != nil {
		log.Fatalf("%v: %v", profile, err)
	}

	tab := symtab.New(nil)
	if len(symbols) != 0 {
		tab, err = symtab.Load(symbols, nil, nil)
		if err != nil {
			log.Fatalf("%v: %v", symbols, err)
		}
	}

	var inf io.Reader = os.Stdin
	if input != "-" {
		file, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer file.Close()
		inf = file
	}

	img := &program.Image{Profile: prof}
	err = img.Unmarshal(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	codec := &program.Codec{Profile: prof, Workers: workers, Verbose: verbose}

	insts, err := codec.Disassemble(img.Words)
	if err != nil {
		report(input, err)
	}

	if dump {
		pp.Println(insts)
	}

	listing := labelled(insts, tab)
	err = writeListing(os.Stdout, prof, listing, tab)
	if err != nil {
		log.Fatal(err)
	}

	if !verify && len(output) == 0 {
		return
	}

	words, differ, err := reencode(codec, listing, tab, img.Words)
	if err != nil {
		report(input, err)
	}

	if verify {
		for _, n := range differ {
			log.Printf("%v: %v", input, color.YellowString("%#x: %#x re-encodes as %#x", n, uint32(img.Words[n]), uint32(words[n])))
		}
	}

	if len(output) != 0 {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()

		out := &program.Image{Profile: prof, Words: words}
		err = out.Marshal(ouf)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	if verify && len(differ) != 0 {
		os.Exit(1)
	}
}
