// Command diesir rolls dice expressions given as arguments, read from a file,
// or typed interactively.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/zephyrtronium/diesir"
	"github.com/zephyrtronium/diesir/internal/config"
)

func main() {
	log.SetFlags(0)
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("%v", err)
	}
	var inname string
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.UintVar(&cfg.Prec, "p", cfg.Prec, "precision of exponentiation in bits")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducible rolls (0 = random)")
	flag.Int64Var(&cfg.MaxDice, "max-dice", cfg.MaxDice, "maximum dice in a single term (0 = unlimited)")
	flag.BoolVar(&cfg.UppercaseDie, "D", cfg.UppercaseDie, "accept D as a die marker")
	flag.BoolVar(&cfg.Echo, "echo", cfg.Echo, "print parse trees")
	flag.BoolVar(&cfg.JSON, "json", cfg.JSON, "print results as JSON")
	flag.Parse()

	r := diesir.New(cfg.Options()...)
	if err := run(os.Stdout, r, cfg, inname, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

// run evaluates the lines of the input file, if any, followed by each
// argument. With neither, it reads stdin, prompting when stdin is a terminal.
func run(out io.Writer, r *diesir.Roller, cfg config.Config, inname string, args []string) error {
	if inname != "" || len(args) == 0 {
		in, prompt, err := infile(inname)
		if err != nil {
			return err
		}
		defer in.Close()
		if prompt {
			fmt.Fprintln(out, "Enter expressions like 2d6 + 3, 1d20, or (1d8 + 2d6)(2). Enter q to quit.")
		}
		if err := repl(in, out, r, cfg, prompt); err != nil {
			return err
		}
	}
	for _, arg := range args {
		show(out, r, arg, cfg)
	}
	return nil
}

// repl evaluates each line of in until EOF or a line reading q.
func repl(in io.Reader, out io.Writer, r *diesir.Roller, cfg config.Config, prompt bool) error {
	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, "> ")
		}
		if !sc.Scan() {
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case strings.EqualFold(line, "q"):
			return nil
		}
		show(out, r, line, cfg)
	}
}

// show evaluates one expression and writes its result or error to out.
func show(out io.Writer, r *diesir.Roller, line string, cfg config.Config) {
	e, err := r.Parse(line)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n\n", err)
		return
	}
	if cfg.Echo {
		fmt.Fprintf(out, "%v : ", e)
	}
	o, err := r.Eval(e)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n\n", err)
		return
	}
	if cfg.JSON {
		b := o.AppendJSON(nil)
		out.Write(append(b, '\n'))
		return
	}
	fmt.Fprintf(out, "Result: %v\nTotal: %g\n\n", o, o.Total)
}

func infile(inname string) (io.ReadCloser, bool, error) {
	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			return nil, false, err
		}
		return f, false, nil
	}
	fd := os.Stdin.Fd()
	return os.Stdin, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), nil
}
