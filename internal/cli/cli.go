// Package cli implements the mypass command-line interface.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mypass/mypass-go/internal/crypto"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	length       int
	upper        bool
	lower        bool
	digits       bool
	symbols      bool
	exclude      string
	count        int
	showStrength bool
	seed         uint64
	seeded       bool
	maxAttempts  int
}

// NewRootCommand builds the mypass command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "mypass",
		Short:         "MyPass generates random passwords and rates their strength",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCommand(), newStrengthCommand())
	return root
}

func newGenerateCommand() *cobra.Command {
	f := generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.seeded = cmd.Flags().Changed("seed")
			return runGenerate(cmd.OutOrStdout(), f)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&f.length, "length", "l", crypto.DefaultLength, "password length")
	flags.BoolVar(&f.upper, "upper", true, "include uppercase letters")
	flags.BoolVar(&f.lower, "lower", true, "include lowercase letters")
	flags.BoolVar(&f.digits, "digits", true, "include digits")
	flags.BoolVar(&f.symbols, "symbols", true, "include symbols")
	flags.StringVarP(&f.exclude, "exclude", "x", "", "characters that must not appear")
	flags.IntVarP(&f.count, "count", "c", 1, "number of passwords to generate")
	flags.BoolVarP(&f.showStrength, "strength", "s", false, "print the strength verdict next to each password")
	flags.IntVar(&f.maxAttempts, "max-attempts", crypto.DefaultMaxAttempts, "candidate draws before giving up")
	flags.Uint64Var(&f.seed, "seed", 0, "deterministic seed for reproducible output (never use for real credentials)")
	_ = flags.MarkHidden("seed")

	return cmd
}

func runGenerate(w io.Writer, f generateFlags) error {
	if f.count < 1 {
		return errors.New("count must be at least 1")
	}
	if f.maxAttempts < 1 {
		return errors.New("max-attempts must be at least 1")
	}

	source := crypto.NewCryptoSource()
	if f.seeded {
		slog.Warn("using a deterministic seed, output is reproducible and must not be used as a credential")
		source = crypto.NewSeededSource(f.seed)
	}
	gen := crypto.NewGenerator(source, crypto.WithMaxAttempts(f.maxAttempts))

	opts := crypto.GeneratorOptions{
		Length:    f.length,
		Uppercase: f.upper,
		Lowercase: f.lower,
		Numbers:   f.digits,
		Symbols:   f.symbols,
		Exclude:   f.exclude,
	}

	for i := 0; i < f.count; i++ {
		password, err := gen.Generate(opts)
		if err != nil {
			return describeError(err)
		}

		if f.showStrength {
			fmt.Fprintf(w, "%s\t%s\n", password, crypto.EvaluateStrength(password))
		} else {
			fmt.Fprintln(w, password)
		}
	}
	return nil
}

// describeError adds a user-facing hint to generation failures.
func describeError(err error) error {
	switch {
	case errors.Is(err, crypto.ErrEmptyPool):
		return fmt.Errorf("%w (select at least one character type and keep some of its characters)", err)
	case errors.Is(err, crypto.ErrInfeasibleConstraints):
		return fmt.Errorf("%w (increase --length or disable a character type)", err)
	default:
		return err
	}
}

func newStrengthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strength [password...]",
		Short: "Rate passwords as weak, medium or strong (reads stdin lines when no arguments are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				for _, pw := range args {
					fmt.Fprintln(cmd.OutOrStdout(), crypto.EvaluateStrength(pw))
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				fmt.Fprintln(cmd.OutOrStdout(), crypto.EvaluateStrength(strings.TrimRight(scanner.Text(), "\r")))
			}
			return scanner.Err()
		},
	}
}
