package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fizzbench/internal/config"
)

// Default verification range; small enough to run on every invocation.
const (
	verifyLower uint64 = 0
	verifyUpper uint64 = 500
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every candidate against the reference classifier",
		RunE:  runVerify,
	}

	cmd.Flags().Uint64("lower", verifyLower, "First input to check (inclusive)")
	cmd.Flags().Uint64("upper", verifyUpper, "End of the checked range (exclusive)")

	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	lower, _ := cmd.Flags().GetUint64("lower")
	upper, _ := cmd.Flags().GetUint64("upper")
	if lower > upper {
		return fmt.Errorf("lower bound %d exceeds upper bound %d", lower, upper)
	}

	reg, err := selectedRegistry(config.Current())
	if err != nil {
		return err
	}

	mismatches := reg.Verify(lower, upper)
	out := cmd.OutOrStdout()
	for _, m := range mismatches {
		fmt.Fprintln(out, m)
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%d mismatches against the reference classifier", len(mismatches))
	}

	fmt.Fprintf(out, "%d candidates agree on [%d, %d)\n", reg.Len(), lower, upper)
	return nil
}
