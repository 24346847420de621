package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	cxf "github.com/colour-science/cxf-go"
	"github.com/colour-science/cxf-go/codec"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "validate":
		validateCmd(os.Args[2:])
	case "info":
		infoCmd(os.Args[2:])
	case "roundtrip":
		roundtripCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "cxf CLI\n\nUsage:\n  cxf validate file.cxf\n  cxf info [-format json|yaml] file.cxf\n  cxf roundtrip [-o out.cxf] file.cxf")
}

// validateCmd checks the file and exits non-zero when it does not conform.
// Validation stops at the first issue, so at most one line is reported.
func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	path := fs.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading input: %v", err)
	}
	err = cxf.Validate(data)
	if err == nil {
		fmt.Printf("%s: ok\n", path)
		return
	}
	iss, ok := cxf.AsIssues(err)
	if !ok {
		fatalf("validate: %v", err)
	}
	for _, is := range iss {
		fmt.Fprintf(os.Stderr, "%s: %s %s: %s\n", path, is.Path, is.Code, is.Message)
	}
	os.Exit(1)
}

// infoCmd decodes the file and dumps the typed document as JSON or YAML.
func infoCmd(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	var format string
	fs.StringVar(&format, "format", "json", "output format: json or yaml")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	path := fs.Arg(0)

	doc, err := cxf.ReadFile(path)
	if err != nil {
		fatalf("reading %s: %v", path, err)
	}
	switch format {
	case "json":
		out, err := codec.MarshalDocumentIndent(doc, "", "  ")
		if err != nil {
			fatalf("encoding json: %v", err)
		}
		fmt.Println(string(out))
	case "yaml":
		raw, err := codec.MarshalDocument(doc)
		if err != nil {
			fatalf("encoding: %v", err)
		}
		var tree any
		if err := json.Unmarshal(raw, &tree); err != nil {
			fatalf("encoding yaml: %v", err)
		}
		out, err := yaml.Marshal(tree)
		if err != nil {
			fatalf("encoding yaml: %v", err)
		}
		fmt.Print(string(out))
	default:
		fatalf("unknown format %q", format)
	}
}

// roundtripCmd decodes the file and re-serializes it, writing to -o or stdout.
func roundtripCmd(args []string) {
	fs := flag.NewFlagSet("roundtrip", flag.ExitOnError)
	var out string
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	path := fs.Arg(0)

	doc, err := cxf.ReadFile(path)
	if err != nil {
		fatalf("reading %s: %v", path, err)
	}
	data, err := cxf.Encode(doc, cxf.EncodeOpt{Validate: true})
	if err != nil {
		fatalf("encoding: %v", err)
	}
	if out == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
