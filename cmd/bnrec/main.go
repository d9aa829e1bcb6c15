// Command bnrec is a small CLI around the recommend facade: it loads a
// JSON network fixture (see internal/modelfixture), applies a sequence of
// observations, and prints ranked recommendations. It exists for demos and
// manual testing of the core; the real archive container and per-type
// deserializer are out of this module's scope.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bnrec",
		Short: "bnrec recommends next calls, definitions, and patterns for a receiver type",
	}
	root.PersistentFlags().String("config", "", "path to bnrec.ini (optional)")
	root.AddCommand(newRecommendCmd())
	return root
}
