package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/xyproto/env/v2"

	"github.com/wspace/wsasm/pkg/wsa/codegen"
	"github.com/wspace/wsasm/pkg/wsa/dialects/burghard"
	"github.com/wspace/wsasm/pkg/wsa/dialects/censoredusername"
	"github.com/wspace/wsasm/pkg/wsa/dialects/palaiologos"
	"github.com/wspace/wsasm/pkg/wsa/dialects/voliva"
	"github.com/wspace/wsasm/pkg/wsa/dialects/wconrad"
	"github.com/wspace/wsasm/pkg/wsa/dialects/wsf"
	"github.com/wspace/wsasm/pkg/wsa/syntax"
)

// dialects maps dialect names to their parse functions.
var dialects = map[string]func([]byte) *syntax.Program{
	"burghard":         burghard.Parse,
	"censoredusername": censoredusername.Parse,
	"palaiologos":      palaiologos.Parse,
	"voliva":           voliva.Parse,
	"wconrad":          wconrad.Parse,
	"wsf":              wsf.Parse,
}

func dialectNames() string {
	return "burghard, censoredusername, palaiologos, voliva, wconrad, wsf"
}

func main() {
	fs := flag.NewFlagSet("wsasm", flag.ExitOnError)
	dialect := fs.String("dialect", env.Str("WSASM_DIALECT", "burghard"),
		"assembly dialect ("+dialectNames()+")")
	check := fs.Bool("check", false, "Parse and report syntax errors")
	ws := fs.Bool("ws", false, "Generate Whitespace to stdout")
	interactive := fs.Bool("i", false, "Interactive inspector")
	options := fs.String("options", "", "Comma-separated option names enabled for -ws")
	fs.Parse(os.Args[1:])

	name := strings.ToLower(*dialect)
	parse, ok := dialects[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "wsasm: unknown dialect %q (expected one of %s)\n",
			*dialect, dialectNames())
		os.Exit(1)
	}

	if *interactive {
		os.Exit(runREPL(name))
	}

	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: wsasm [-dialect name] [-check] [-ws] [-i] [files...]")
		os.Exit(1)
	}

	var enabled []string
	if *options != "" {
		enabled = strings.Split(*options, ",")
	}

	status := 0
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wsasm: %v\n", err)
			os.Exit(1)
		}
		prog := parse(src)

		// Every parse must reproduce its input exactly.
		var pretty []byte
		prog.Pretty(&pretty)
		if !bytes.Equal(pretty, src) {
			fmt.Fprintf(os.Stderr, "wsasm: internal error: %s: pretty output differs from input\n", path)
			os.Exit(1)
		}

		switch {
		case *check:
			if prog.HasError() {
				fmt.Printf("%s: syntax errors\n", path)
				status = 1
			} else {
				fmt.Printf("%s: ok\n", path)
			}
		case *ws:
			w := &codegen.ByteWriter{}
			if err := codegen.Generate(prog, w, enabled); err != nil {
				fmt.Fprintf(os.Stderr, "wsasm: %s: %v\n", path, err)
				os.Exit(1)
			}
			os.Stdout.Write(w.Bytes())
		default:
			dumpProgram(os.Stdout, prog)
		}
	}
	os.Exit(status)
}
