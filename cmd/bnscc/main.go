package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/biodivine/bnscc/internal/demo"
	"github.com/biodivine/bnscc/pkg/bdd"
	"github.com/biodivine/bnscc/pkg/dot"
	"github.com/biodivine/bnscc/pkg/network"
	"github.com/biodivine/bnscc/pkg/scc"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bnscc",
		Short: "Boolean network SCC decomposition and BDD manipulation",
	}

	var parallelism int

	sccCmd := &cobra.Command{
		Use:   fmt.Sprintf("scc <model> (one of: %s)", strings.Join(demo.Names(), ", ")),
		Short: "Decompose a demo Boolean network's state graph into SCCs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, ok := demo.Build(args[0])
			if !ok {
				return fmt.Errorf("unknown model %q: want one of %s", args[0], strings.Join(demo.Names(), ", "))
			}

			fmt.Printf("model: %s\n", args[0])
			fmt.Printf("  variables: %d\n", net.VarCount())
			fmt.Printf("  states: %d\n", net.StateCount())

			var result scc.Result
			if parallelism <= 1 {
				fmt.Printf("  mode: sequential\n")
				var stats scc.Stats
				result, stats = scc.Sequential(net)
				fmt.Printf("  explored: %d, iterations: %d, max stack depth: %d\n",
					stats.Explored, stats.Iterations, stats.MaxStackDepth)
			} else {
				fmt.Printf("  mode: parallel (P=%d)\n", parallelism)
				result = scc.Parallel(net, parallelism, func(workerID int, stats scc.Stats) {
					fmt.Printf("  worker %d done: explored %d, iterations %d, max stack depth %d\n",
						workerID, stats.Explored, stats.Iterations, stats.MaxStackDepth)
				})
			}

			sizes := result.ComponentSizes()
			fmt.Printf("non-trivial components: %d\n", len(sizes))

			roots := make([]network.State, 0, len(sizes))
			for root := range sizes {
				roots = append(roots, root)
			}
			sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })
			for _, root := range roots {
				fmt.Printf("  component[root=%d]: %d states\n", root, sizes[root])
			}

			return nil
		},
	}
	sccCmd.Flags().IntVarP(&parallelism, "parallelism", "p", 1, "number of parallel workers (<=1 runs the sequential engine)")

	bddCmd := &cobra.Command{
		Use:   "bdd",
		Short: "BDD construction and pretty-printing",
	}

	var zeroPruned bool
	bddDotCmd := &cobra.Command{
		Use:   "dot <expr>",
		Short: "Build a BDD from a tiny prefix-expression and print it as .dot",
		Long: "Parses a prefix Boolean expression over the variable names v0, v1, ... " +
			"using operators 'and', 'not', and variable references, e.g. \"and v0 (not v1)\", " +
			"and writes the resulting BDD's .dot graph to stdout.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numVars, err := maxVarIndex(args[0])
			if err != nil {
				return err
			}
			w := bdd.NewAnonymousWorker(uint32(numVars + 1))
			b, err := parseExpr(w, strings.Fields(args[0]))
			if err != nil {
				return err
			}
			return dot.Print(os.Stdout, b, w.VarNames(), zeroPruned)
		},
	}
	bddDotCmd.Flags().BoolVar(&zeroPruned, "zero-pruned", false, "omit the 0 terminal and edges into it")
	bddCmd.AddCommand(bddDotCmd)

	rootCmd.AddCommand(sccCmd, bddCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
