package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordchain/wordchain"
)

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	format, err := parseFormat(a.format)
	if err != nil {
		return err
	}

	words, err := readInputs(args, a.stdin)
	if err != nil {
		return err
	}
	logger.Debug("read words", "count", len(words))

	prog := newProgress(logger)
	res, err := wordchain.Solve(words,
		wordchain.WithMaxWords(a.maxWords),
		wordchain.WithLogger(logger),
		wordchain.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Solved %d words", len(words)))

	return writeResult(a.stdout, res, format)
}
