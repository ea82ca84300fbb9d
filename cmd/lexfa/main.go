/*
Lexfa builds minimized DFAs from NFA definitions and uses them to run
maximal-munch lexical scanning.

Usage:

	lexfa nfa FILE
		Parses an NFA definition file and prints its structure as a
		Graphviz dot digraph.

	lexfa ttable FILE
		Parses a transition table text file and prints it as a Graphviz dot
		digraph.

	lexfa build [-c CACHEDIR] MANIFEST
		Compiles every token in a TOML token manifest into a minimized DFA
		and prints a summary table. With -c, an on-disk build cache in
		CACHEDIR lets unchanged sources skip subset construction.

	lexfa scan MANIFEST INPUT
		Builds the manifest's DFAs and tokenizes the contents of INPUT,
		printing the resulting token stream as a table.

	lexfa repl MANIFEST
		Builds the manifest's DFAs once, then tokenizes each line read from
		an interactive prompt.

Exit code 0 on success, non-zero with a message on stderr otherwise.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/dekarrin/lexfa/internal/util"
)

var subcommands = []string{"nfa", "ttable", "build", "scan", "repl"}

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota
	// ExitUsageError indicates a missing or unknown subcommand.
	ExitUsageError
	// ExitParseError is not returned by any path; parse failures exit with
	// ExitRuntimeError.
	ExitParseError
	// ExitRuntimeError indicates any error returned by a subcommand,
	// including malformed subcommand arguments and parse failures.
	ExitRuntimeError
)

var returnCode = ExitSuccess

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "ERROR: expected a subcommand: %s\n", util.MakeTextList(append([]string{}, subcommands...)))
		returnCode = ExitUsageError
		return
	}

	sub := os.Args[1]
	args := os.Args[2:]

	var err error
	switch sub {
	case "nfa":
		err = runNFA(args)
	case "ttable":
		err = runTTable(args)
	case "build":
		err = runBuild(args)
	case "scan":
		err = runScan(args)
	case "repl":
		err = runRepl(args)
	default:
		fmt.Fprintf(os.Stderr, "ERROR: unknown subcommand %q; expected one of %s\n", sub, util.MakeTextList(append([]string{}, subcommands...)))
		returnCode = ExitUsageError
		return
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitRuntimeError
	}
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	return fs
}
