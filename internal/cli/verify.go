package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordchain/wordchain"
)

// errInvalidChain is returned by the verify command so the process exits non-zero.
var errInvalidChain = errors.New("not a valid word chain")

func (a *app) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [files...]",
		Short: "Check that words, in the given order, form a valid chain",
		Long: `verify reads words in order and checks that each is exactly one character
edit away from the next. It exits with status 1 if the chain is broken.`,
		Args: cobra.ArbitraryArgs,
		RunE: a.runVerify,
	}
}

func (a *app) runVerify(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	chain, err := readInputs(args, a.stdin)
	if err != nil {
		return err
	}
	logger.Debug("verifying chain", "length", len(chain))

	if err := wordchain.Verify(chain); err != nil {
		fmt.Fprintln(a.stdout, errorLine(err.Error()))
		return errInvalidChain
	}
	fmt.Fprintln(a.stdout, successLine(fmt.Sprintf("valid chain of %d words", len(chain))))
	return nil
}
