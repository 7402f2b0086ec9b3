// fincalc is a one-shot command line interface to the financial
// calculators, for scripting and quick checks without the TUI.
//
// Usage:
//
//	fincalc tax -income 50000
//	fincalc compound -principal 10000 -rate 12 -periods 3
//	fincalc simple -principal 10000 -rate 12 -periods 3
//	fincalc percent -op percent_of -a 15 -b 10000
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/isaque468/finagent/pkg/fincalc"
	"github.com/isaque468/finagent/pkg/tools/std"
)

// Version is filled in at build time.
var Version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return fmt.Errorf("missing subcommand")
	}

	switch args[0] {
	case "tax":
		return runTax(args[1:])
	case "compound", "simple":
		return runInterest(args[0], args[1:])
	case "percent":
		return runPercent(args[1:])
	case "version":
		fmt.Printf("fincalc version %s\n", Version)
		return nil
	case "-h", "--help", "help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown subcommand: %q", args[0])
	}
}

func runTax(args []string) error {
	fs := flag.NewFlagSet("tax", flag.ContinueOnError)
	income := fs.Float64("income", 0, "rendimento anual bruto em reais")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := fincalc.IncomeTax(*income)
	if err != nil {
		return err
	}
	fmt.Println(std.FormatTaxReport(result))
	return nil
}

func runInterest(kind string, args []string) error {
	fs := flag.NewFlagSet(kind, flag.ContinueOnError)
	principal := fs.Float64("principal", 0, "capital inicial em reais")
	rate := fs.Float64("rate", 0, "taxa por período, em porcento (12 = 12%)")
	periods := fs.Int("periods", 0, "número de períodos")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		result fincalc.InterestResult
		err    error
		title  string
	)
	if kind == "compound" {
		title = "Juros Compostos"
		result, err = fincalc.CompoundInterest(*principal, *rate/100, *periods)
	} else {
		title = "Juros Simples"
		result, err = fincalc.SimpleInterest(*principal, *rate/100, *periods)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", title)
	fmt.Printf("Capital inicial: %s\n", fincalc.FormatBRL(result.Principal))
	fmt.Printf("Montante final: %s\n", fincalc.FormatBRL(result.FinalAmount))
	fmt.Printf("Juros: %s\n", fincalc.FormatBRL(result.Interest))
	return nil
}

func runPercent(args []string) error {
	fs := flag.NewFlagSet("percent", flag.ContinueOnError)
	opName := fs.String("op", "percent_of", "operação: percent_of, percent_of_total, percent_change")
	a := fs.Float64("a", 0, "primeiro operando")
	b := fs.Float64("b", 0, "segundo operando")
	if err := fs.Parse(args); err != nil {
		return err
	}

	op, err := fincalc.ParsePercentOp(*opName)
	if err != nil {
		return err
	}
	result, err := fincalc.Percentage(op, *a, *b)
	if err != nil {
		return err
	}

	switch op {
	case fincalc.PercentOf:
		fmt.Printf("%.2f%% de %.2f = %.2f\n", *a, *b, result)
	case fincalc.PercentOfTotal:
		fmt.Printf("%.2f é %.2f%% de %.2f\n", *a, result, *b)
	default:
		fmt.Printf("Variação de %.2f para %.2f = %.2f%%\n", *a, *b, result)
	}
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `fincalc - calculadora financeira

Subcomandos:
  tax      -income <valor>
  compound -principal <valor> -rate <percent> -periods <n>
  simple   -principal <valor> -rate <percent> -periods <n>
  percent  -op <percent_of|percent_of_total|percent_change> -a <x> -b <y>
  version`)
}
