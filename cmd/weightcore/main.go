// Command weightcore reads a declaration stream and prints one weight per
// declared page, mirroring strusPageWeight's argument loop (SPEC_FULL.md
// "Supplemented features" #4) in the teacher's flag-package style
// (cmd/server/main.go).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ritamzico/linkweight/decl"
	"github.com/ritamzico/linkweight/dump"
	"github.com/ritamzico/linkweight/engine"
	"github.com/ritamzico/linkweight/linkgraph"
	"github.com/ritamzico/linkweight/weight"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: weightcore [options] [<inputfile>]")
	fmt.Fprintln(os.Stderr, "reads a '*name = [-> target] link ... ;' declaration stream from the")
	fmt.Fprintln(os.Stderr, "given file, or stdin if omitted, and prints '<name>\\t<weight>' per")
	fmt.Fprintln(os.Stderr, "declared page.")
	fmt.Fprintln(os.Stderr, "options:")
	flag.PrintDefaults()
}

func main() {
	policyName := flag.String("p", "pagerank", "weighting policy: pagerank (P1) or indegree (P2)")
	iterations := flag.Int("i", 0, "power-iteration count for pagerank (0 = policy default)")
	damping := flag.Float64("d", 0, "damping factor for pagerank (0 = policy default)")
	redirectPath := flag.String("r", "", "write the canonicalizing redirect dump to this file")
	verbose := flag.Bool("V", false, "trace each parsed begin/redirect/link event to stderr")
	flag.Usage = usage
	flag.Parse()

	var policy weight.Policy
	switch *policyName {
	case "pagerank", "P1", "":
		policy = weight.PageRank{Iterations: *iterations, Damping: *damping}
	case "indegree", "P2":
		policy = weight.InDegree{}
	default:
		fmt.Fprintf(os.Stderr, "weightcore: unknown policy %q\n", *policyName)
		os.Exit(1)
	}

	var in io.Reader = os.Stdin
	if path := flag.Arg(0); path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "weightcore: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	cfg := engine.Config{Weight: policy}
	if *verbose {
		cfg.Trace = decl.TraceFunc(func(msg string) {
			fmt.Fprintln(os.Stderr, msg)
		})
	}

	res, err := engine.Run(context.Background(), in, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "weightcore: %v\n", err)
		os.Exit(1)
	}

	for _, msg := range res.Warnings {
		fmt.Fprintln(os.Stderr, "warning: "+msg)
	}

	for n := 1; n <= res.Graph.NumPages(); n++ {
		id := linkgraph.PageId(n)
		if !res.Graph.Declared(id) {
			continue
		}
		name, _ := res.Graph.NameOf(id)
		fmt.Printf("%s\t%v\n", name, res.Weights[n])
	}

	if *redirectPath != "" {
		f, err := os.Create(*redirectPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "weightcore: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := dump.WriteRedirects(res.RawGraph, f); err != nil {
			fmt.Fprintf(os.Stderr, "weightcore: %v\n", err)
			os.Exit(1)
		}
	}
}
