package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	bignum "github.com/Python-Team-25-26/bignum-arithmetic"
)

// limbcalc evaluates a single BigNum operation on native integer operands and
// prints the result in limb form. It is handy for checking what a value looks
// like in radix-1000 limbs, or for poking at the overflow boundary.
//
// Negative operands need a '--' before them so cobra doesn't treat them as
// flags:
//
//	limbcalc -- -56088 / 1000
//	limbcalc --decimal 123456789 '*' 987654321
//	limbcalc neg 1000

const longUsage = `Evaluate one BigNum operation.

Binary ops: + - * / % cmp
Unary ops:  neg

'cmp' compares magnitudes, ignoring sign, and prints -1, 0 or 1.`

var errUnknownOp = errors.New("limbcalc: unknown op")

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "limbcalc [flags] <a> <op> <b> | neg <a>",
		Short:         "Evaluate one BigNum operation",
		Long:          longUsage,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, stdout, stderr)
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "log operands and results at debug level")
	cmd.Flags().Bool("decimal", false, "also print the result in base 10")
	cmd.Flags().Bool("dump", false, "dump the result value with spew")
	return cmd
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().Timestamp().Logger().Level(level)
}

func run(cmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	decimal, err := cmd.Flags().GetBool("decimal")
	if err != nil {
		return err
	}
	dump, err := cmd.Flags().GetBool("dump")
	if err != nil {
		return err
	}

	log := newLogger(stderr, verbose)

	res, err := evaluate(log, args)
	if err != nil {
		log.Error().Err(err).Strs("args", args).Msg("evaluation failed")
		return err
	}

	if res.isCmp {
		fmt.Fprintln(stdout, res.cmp)
		return nil
	}

	fmt.Fprintln(stdout, res.value)
	if decimal {
		fmt.Fprintf(stdout, "%d\n", res.value)
	}
	if dump {
		fmt.Fprint(stdout, spew.Sdump(res.value))
	}
	return nil
}

type result struct {
	value bignum.BigNum
	cmp   int
	isCmp bool
}

func parseOperand(s string) (bignum.BigNum, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return bignum.BigNum{}, errors.Wrapf(err, "limbcalc: bad operand %q", s)
	}
	return bignum.From64(v), nil
}

func evaluate(log zerolog.Logger, args []string) (res result, err error) {
	if len(args) == 2 {
		if args[0] != "neg" {
			return res, errors.Wrapf(errUnknownOp, "%q is not a unary op", args[0])
		}
		a, err := parseOperand(args[1])
		if err != nil {
			return res, err
		}
		log.Debug().Stringer("a", a).Msg("neg")
		res.value = a.Neg()
		return res, nil
	}

	if len(args) != 3 {
		return res, errors.Errorf("limbcalc: expected 3 args, found %d", len(args))
	}

	a, err := parseOperand(args[0])
	if err != nil {
		return res, err
	}
	b, err := parseOperand(args[2])
	if err != nil {
		return res, err
	}

	op := args[1]
	log.Debug().Stringer("a", a).Str("op", op).Stringer("b", b).Msg("evaluate")

	switch op {
	case "+":
		res.value, err = a.Add(b)
	case "-":
		res.value, err = a.Sub(b)
	case "*", "x":
		res.value, err = a.Mul(b)
	case "/":
		res.value, err = a.Quo(b)
	case "%":
		res.value, err = a.Rem(b)
	case "cmp":
		res.cmp, res.isCmp = a.CmpAbs(b), true
	default:
		return res, errors.Wrapf(errUnknownOp, "%q", op)
	}
	if err != nil {
		return res, err
	}

	log.Debug().Stringer("result", res.value).Int("limbs", res.value.Len()).Msg("done")
	return res, nil
}
