package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"marklint/internal/diag"
	"marklint/internal/diagfmt"
	"marklint/internal/lexer"
	"marklint/internal/source"
	"marklint/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.mx>",
	Short: "Dump the token stream of a source file",
	Long:  `Tokenize lexes one .mx file and prints each token with its span, mainly for debugging the front end`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().Bool("trivia", false, "include leading trivia counts")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	showTrivia, err := cmd.Flags().GetBool("trivia")
	if err != nil {
		return err
	}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}
	file := fileSet.Get(fileID)

	bag := diag.NewBag(64)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

	for {
		tok := lx.Next()
		start, _ := fileSet.Resolve(tok.Span)
		line := fmt.Sprintf("%4d:%-3d %-12s", start.Line, start.Col, tok.Kind)
		if tok.Text != "" {
			line += fmt.Sprintf(" %q", tok.Text)
		}
		if showTrivia && len(tok.Leading) > 0 {
			line += fmt.Sprintf(" (+%d trivia)", len(tok.Leading))
		}
		fmt.Fprintln(os.Stdout, line)
		if tok.Kind == token.EOF {
			break
		}
	}

	if bag.Len() > 0 {
		fmt.Fprintln(os.Stdout)
		if err := diagfmt.Short(os.Stdout, bag, fileSet, false); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout)
	}
	if bag.HasErrors() {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}
