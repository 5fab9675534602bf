package domselect_test

import (
	"fmt"
	"strings"

	"github.com/arjunvale/domselect"
)

func ExampleParse() {
	doc, err := domselect.Parse(strings.NewReader(`<div id=main><p>1</p><p>2</p><p>3</p></div>`))
	if err != nil {
		fmt.Printf("Error parsing document: %v\n", err)
		return
	}

	sel, err := domselect.CSS("#main p")
	if err != nil {
		fmt.Printf("Error compiling selector: %v\n", err)
		return
	}

	results, err := doc.All(sel)
	if err != nil {
		fmt.Printf("Error selecting: %v\n", err)
		return
	}

	for _, r := range results {
		fmt.Println(r.Text())
	}
	// Output:
	// 1
	// 2
	// 3
}

func ExampleXPath() {
	doc, err := domselect.Parse(strings.NewReader(`<ul><li>a<li>b<li>c</ul>`))
	if err != nil {
		fmt.Printf("Error parsing document: %v\n", err)
		return
	}

	sel, err := domselect.XPath(`//li[2]`)
	if err != nil {
		fmt.Printf("Error compiling selector: %v\n", err)
		return
	}

	result, ok, err := doc.One(sel)
	if err != nil || !ok {
		fmt.Printf("Error selecting (ok=%v): %v\n", ok, err)
		return
	}

	fmt.Println(result.Text())
	// Output: b
}

func ExampleDocument_Select() {
	doc, err := domselect.Parse(strings.NewReader(`<div id=main><p>1</p><p>2</p></div>`))
	if err != nil {
		fmt.Printf("Error parsing document: %v\n", err)
		return
	}

	sel, err := domselect.CSS("#main p")
	if err != nil {
		fmt.Printf("Error compiling selector: %v\n", err)
		return
	}

	value, err := doc.Select(domselect.Context{Accumulator: domselect.AllAccumulator()}, sel)
	if err != nil {
		fmt.Printf("Error selecting: %v\n", err)
		return
	}

	results := value.([]domselect.Result)
	fmt.Println(len(results))
	// Output: 2
}
