// Package main provides the command-line interface for domselect. It
// runs a CSS or XPath query against a file or standard input and prints
// the matching results.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arjunvale/domselect"
	"github.com/arjunvale/domselect/internal/compat"
)

func main() {
	cssFlag := flag.String("css", "", "CSS selector to run")
	xpathFlag := flag.String("xpath", "", "XPath expression to run")
	inputPath := flag.String("input", "-", "Input file path, or '-' for stdin")
	mode := flag.String("mode", "html", "Parse mode: html or xml")
	extractFlag := flag.String("extract", "text", "What to print per match: text, html, own-text, data, dataset, tag, or attr:NAME")
	all := flag.Bool("all", false, "Print every match instead of only the first")
	verify := flag.Bool("verify", false, "Cross-check against the matching compatibility oracle and warn on divergence")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "domselect - run a CSS or XPath query against an HTML/XML document\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s -css SELECTOR|-xpath EXPR [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if (*cssFlag == "") == (*xpathFlag == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -css or -xpath is required")
		os.Exit(1)
	}
	if *mode != "html" && *mode != "xml" {
		fmt.Fprintf(os.Stderr, "invalid -mode %q: must be html or xml\n", *mode)
		os.Exit(1)
	}

	var input io.Reader = os.Stdin
	if *inputPath != "-" {
		f, err := os.Open(*inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening input file %s: %v\n", *inputPath, err)
			os.Exit(1)
		}
		defer f.Close()
		input = f
	}
	markup, err := io.ReadAll(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
		os.Exit(1)
	}

	var opts []domselect.Option
	if *mode == "xml" {
		opts = append(opts, domselect.WithXMLMode())
	}
	doc, err := domselect.Parse(strings.NewReader(string(markup)), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing document: %v\n", err)
		os.Exit(1)
	}

	var sel domselect.Selector
	if *cssFlag != "" {
		sel, err = domselect.CSS(*cssFlag)
	} else {
		sel, err = domselect.XPath(*xpathFlag)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error compiling selector: %v\n", err)
		os.Exit(1)
	}

	var results []domselect.Result
	if *all {
		results, err = doc.All(sel)
	} else {
		var r domselect.Result
		var ok bool
		r, ok, err = doc.One(sel)
		if err == nil && ok {
			results = []domselect.Result{r}
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error selecting: %v\n", err)
		os.Exit(1)
	}

	for _, r := range results {
		fmt.Println(renderExtract(r, *extractFlag))
	}

	if *verify {
		runVerify(string(markup), *cssFlag, *xpathFlag, results, *extractFlag)
	}
}

func renderExtract(r domselect.Result, what string) string {
	switch {
	case what == "text":
		return r.Text()
	case what == "own-text":
		return r.OwnText()
	case what == "html":
		return r.HTML()
	case what == "data":
		return r.Data()
	case what == "tag":
		tag, _ := r.Tag()
		return tag
	case what == "dataset":
		dataset, _ := r.Dataset()
		return fmt.Sprintf("%v", dataset)
	case strings.HasPrefix(what, "attr:"):
		value, _ := r.Attr(strings.TrimPrefix(what, "attr:"))
		return value
	default:
		return r.Text()
	}
}

// runVerify cross-checks results against the matching compatibility
// oracle and warns to stderr on divergence; it never fails the run.
func runVerify(markup, cssSel, xpathExpr string, results []domselect.Result, what string) {
	var oracle []compat.OracleMatch
	var err error
	if cssSel != "" {
		oracle, err = compat.CSSOracle(markup, cssSel)
	} else {
		oracle, err = compat.XPathOracle(markup, xpathExpr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "verify: oracle failed: %v\n", err)
		return
	}
	if len(oracle) != len(results) {
		fmt.Fprintf(os.Stderr, "verify: match count diverges: engine=%d oracle=%d\n", len(results), len(oracle))
		return
	}
	if what != "text" {
		return
	}
	for i, r := range results {
		if r.Text() != strings.TrimSpace(oracle[i].Text) {
			fmt.Fprintf(os.Stderr, "verify: text diverges at match %d: engine=%q oracle=%q\n", i, r.Text(), oracle[i].Text)
		}
	}
}
