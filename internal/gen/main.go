// Command gen renders the fixed-arity chain helpers of package rxchain.
//
// Go has no variadic type parameters, so every arity gets its own function.
// Run it through go generate from the module root:
//
//	go run ./internal/gen -o chain_gen.go -max 9
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

var numbers = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

type family struct {
	Name   string
	Policy string
	Op     string
}

var families = []family{
	{Name: "Flatten", Policy: "Merge", Op: "FlatMap"},
	{Name: "Ordered", Policy: "Concat", Op: "ConcatMap"},
	{Name: "Latest", Policy: "Switch", Op: "SwitchMap"},
}

type param struct {
	Name string
	Type string
}

type arity struct {
	N          int
	Stages     string
	TypeParams string
	Params     []param
	Args       string
	Body       string

	Transforms          string
	TransformTypeParams string
	TransformParams     []param
	TransformResult     string
	TransformBody       string
}

const source = `// Code generated by internal/gen; DO NOT EDIT.

package rxchain

import "github.com/fxsml/rxchain/stream"
{{range $f := .Families}}{{range $a := $.Arities}}
// {{$f.Name}}{{$a.N}} chains {{$a.Stages}} after zero and joins every stage
// with [stream.{{$f.Op}}]. Each stage receives all values produced before it.
func {{$f.Name}}{{$a.N}}[{{$a.TypeParams}} any](
{{range $a.Params}}	{{.Name}} {{.Type}},
{{end}}) stream.Stream[R] {
	return chain{{$a.N}}({{$f.Policy}}, {{$a.Args}})
}
{{end}}{{end}}{{range .Arities}}
// Transform{{.N}} applies {{.Transforms}} in order to the stream produced by zero.
func Transform{{.N}}[{{.TransformTypeParams}} any](
{{range .TransformParams}}	{{.Name}} {{.Type}},
{{end}}) stream.Stream[{{.TransformResult}}] {
	return {{.TransformBody}}
}
{{end}}{{range .Arities}}
func chain{{.N}}[{{.TypeParams}} any](
	p Policy,
{{range .Params}}	{{.Name}} {{.Type}},
{{end}}) stream.Stream[R] {
{{.Body}}}
{{end}}`

func main() {
	out := flag.String("o", "chain_gen.go", "output file")
	maxArity := flag.Int("max", 9, "highest arity to generate")
	flag.Parse()

	if *maxArity < 1 || *maxArity >= len(numbers) {
		log.Fatalf("gen: -max must be between 1 and %d", len(numbers)-1)
	}

	src, err := render(*maxArity)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal(err)
	}
}

func render(maxArity int) ([]byte, error) {
	tmpl, err := template.New("chain").Parse(source)
	if err != nil {
		return nil, err
	}

	arities := make([]arity, 0, maxArity)
	for n := 1; n <= maxArity; n++ {
		arities = append(arities, newArity(n))
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Families []family
		Arities  []arity
	}{families, arities})
	if err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format: %w", err)
	}
	return src, nil
}

func newArity(n int) arity {
	types := letters(n + 1)
	values := make([]string, len(types))
	for i, t := range types {
		values[i] = strings.ToLower(t)
	}

	// stage k consumes the first k values; the last one produces R.
	chainTypes := append(types[:n:n], "R")
	params := []param{{Name: "zero", Type: "func() stream.Stream[A]"}}
	for k := 1; k <= n; k++ {
		params = append(params, param{
			Name: numbers[k],
			Type: fmt.Sprintf("func(%s) stream.Stream[%s]", strings.Join(types[:k], ", "), chainTypes[k]),
		})
	}

	transformParams := []param{{Name: "zero", Type: "func() stream.Stream[A]"}}
	transformBody := "stream.Defer(zero)"
	for k := 1; k <= n; k++ {
		transformParams = append(transformParams, param{
			Name: numbers[k],
			Type: fmt.Sprintf("stream.Transformer[%s, %s]", types[k-1], types[k]),
		})
		transformBody = fmt.Sprintf("%s(%s)", numbers[k], transformBody)
	}

	return arity{
		N:          n,
		Stages:     plural(n, "stage"),
		TypeParams: strings.Join(chainTypes, ", "),
		Params:     params,
		Args:       strings.Join(numbers[:n+1], ", "),
		Body:       nest(n, types, values),

		Transforms:          plural(n, "transformer"),
		TransformTypeParams: strings.Join(types, ", "),
		TransformParams:     transformParams,
		TransformResult:     types[n],
		TransformBody:       transformBody,
	}
}

// nest renders one Bind per stage, each continuation closing over every
// value bound so far.
func nest(n int, types, values []string) string {
	var b strings.Builder
	for k := 0; k < n; k++ {
		indent := strings.Repeat("\t", k+1)
		src := "stream.Defer(zero)"
		if k > 0 {
			src = fmt.Sprintf("%s(%s)", numbers[k], strings.Join(values[:k], ", "))
		}
		fmt.Fprintf(&b, "%sreturn Bind(p, %s, func(%s %s) stream.Stream[R] {\n", indent, src, values[k], types[k])
	}
	fmt.Fprintf(&b, "%sreturn %s(%s)\n", strings.Repeat("\t", n+1), numbers[n], strings.Join(values[:n], ", "))
	for k := n - 1; k >= 0; k-- {
		fmt.Fprintf(&b, "%s})\n", strings.Repeat("\t", k+1))
	}
	return b.String()
}

func letters(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}

func plural(n int, noun string) string {
	if n == 1 {
		return numbers[n] + " " + noun
	}
	return numbers[n] + " " + noun + "s"
}
