// Package main provides the entry point for the voice-ledger CLI application.
package main

import (
	"fmt"
	"os"

	"fjacquet/voice-ledger/cmd/batch"
	"fjacquet/voice-ledger/cmd/keywords"
	"fjacquet/voice-ledger/cmd/parse"
	"fjacquet/voice-ledger/cmd/root"
	"fjacquet/voice-ledger/cmd/serve"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(keywords.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
