// Command bytecodec is a small demonstration front end for the rle,
// huffman and rice packages: it reads a whole file into memory,
// compresses or decompresses it with the chosen codec, and writes the
// result to another file.
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"
)

const appHeader = "bytecodec 1.0"

const helpText = `
Usage: bytecodec [-c|-d] -codec <name> -in <file> -out <file> [-verbose]

  -c             compress (default)
  -d             decompress
  -codec <name>  rle, rle8, huffman or rice
  -in <file>     input file
  -out <file>    output file
  -verbose       print timing and size information
  -h, --help     print this message
`

type options struct {
	decompress bool
	codecName  string
	inPath     string
	outPath    string
	verbose    bool
}

// parseArgs walks args by hand: flags that take a following value
// advance an extra slot, rather than reaching for a flag-parsing
// library.
func parseArgs(args []string) (options, error) {
	opt := options{codecName: "huffman"}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h", "--help":
			fmt.Print(helpText)
			os.Exit(0)
		case "-c":
			opt.decompress = false
		case "-d":
			opt.decompress = true
		case "-verbose":
			opt.verbose = true
		case "-codec":
			i++
			if i >= len(args) {
				return opt, fmt.Errorf("-codec requires a value")
			}
			opt.codecName = args[i]
		case "-in":
			i++
			if i >= len(args) {
				return opt, fmt.Errorf("-in requires a value")
			}
			opt.inPath = args[i]
		case "-out":
			i++
			if i >= len(args) {
				return opt, fmt.Errorf("-out requires a value")
			}
			opt.outPath = args[i]
		default:
			return opt, fmt.Errorf("unknown argument: %s", args[i])
		}
	}

	if opt.inPath == "" {
		return opt, fmt.Errorf("missing -in <file>")
	}
	if opt.outPath == "" {
		return opt, fmt.Errorf("missing -out <file>")
	}

	return opt, nil
}

func main() {
	opt, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "bytecodec:", err)
		fmt.Fprint(os.Stderr, helpText)
		os.Exit(1)
	}

	p := newPrinter(os.Stdout, opt.verbose)
	p.println(appHeader)

	if err := run(opt, p); err != nil {
		fmt.Fprintln(os.Stderr, "bytecodec:", err)
		os.Exit(1)
	}
}

func run(opt options, p *printer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	in, err := ioutil.ReadFile(opt.inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", opt.inPath, err)
	}

	start := time.Now()
	var out []byte

	if opt.decompress {
		out, err = decompress(in)
		if err != nil {
			return fmt.Errorf("decompress: %w", err)
		}
		p.stage("decompress", start)
		p.ratio("decompress", len(in), len(out))
	} else {
		tag, err2 := CodecByName(opt.codecName)
		if err2 != nil {
			return err2
		}
		out, err = compress(tag, in)
		if err != nil {
			return fmt.Errorf("compress: %w", err)
		}
		p.stage("compress", start)
		p.ratio("compress", len(in), len(out))
	}

	if err := ioutil.WriteFile(opt.outPath, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", opt.outPath, err)
	}

	return nil
}
