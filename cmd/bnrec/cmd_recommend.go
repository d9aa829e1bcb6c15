package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bayeshint/bnrec/internal/config"
	"github.com/bayeshint/bnrec/internal/logging"
	"github.com/bayeshint/bnrec/internal/modelfixture"
	"github.com/bayeshint/bnrec/recommend"
)

func newRecommendCmd() *cobra.Command {
	var (
		fixturePath     string
		receiverType    string
		enclosingMethod string
		kind            string
		pattern         string
		definition      string
		calls           []string
		minRelevance    float64
		maxResults      int
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "load a network fixture and print ranked call recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			requestID := uuid.New()

			cfgPath, _ := cmd.Flags().GetString("config")
			cfg := config.Default()
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if !cmd.Flags().Changed("min-relevance") {
				minRelevance = cfg.Recommend.MinRelevance
			}
			if !cmd.Flags().Changed("max-results") {
				maxResults = cfg.Recommend.MaxResults
			}

			logger, err := logging.New(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("logger init: %w", err)
			}
			defer logger.Sync() //nolint:errcheck
			logger = logger.With(zap.String("request_id", requestID.String()))

			f, err := os.Open(fixturePath)
			if err != nil {
				return fmt.Errorf("open fixture: %w", err)
			}
			defer f.Close()

			network, err := modelfixture.Decode(f)
			if err != nil {
				return fmt.Errorf("decode fixture: %w", err)
			}

			facade, err := recommend.New(receiverType, network, logger)
			if err != nil {
				return fmt.Errorf("construct facade: %w", err)
			}

			if enclosingMethod != "" {
				facade.SetObservedEnclosingMethod(enclosingMethod)
			}
			if kind != "" {
				facade.SetObservedKind(kind)
			}
			if pattern != "" {
				facade.SetObservedPattern(pattern)
			}
			if definition != "" {
				facade.SetObservedDefinition(definition)
			}
			if len(calls) > 0 {
				facade.SetObservedCalls(calls)
			}

			recs := facade.RecommendedCalls(
				func(r recommend.Recommendation) bool { return r.Relevance >= minRelevance },
				recommend.ByDescendingRelevance,
				maxResults,
			)
			for _, r := range recs {
				fmt.Fprintf(cmd.OutOrStdout(), "%.4f\t%s\n", r.Relevance, r.Value)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fixturePath, "fixture", "", "path to a modelfixture JSON network description (required)")
	cmd.Flags().StringVar(&receiverType, "receiver-type", "", "receiver type name to bind the facade to (required)")
	cmd.Flags().StringVar(&enclosingMethod, "enclosing-method", "", "observed enclosing method identifier")
	cmd.Flags().StringVar(&kind, "kind", "", "observed variable kind")
	cmd.Flags().StringVar(&pattern, "pattern", "", "observed usage pattern label")
	cmd.Flags().StringVar(&definition, "definition", "", "observed definition method identifier")
	cmd.Flags().StringArrayVar(&calls, "call", nil, "an already-observed call (repeatable)")
	cmd.Flags().Float64Var(&minRelevance, "min-relevance", 0.1, "minimum relevance to include in output")
	cmd.Flags().IntVar(&maxResults, "max-results", 5, "maximum number of results to print")
	cmd.MarkFlagRequired("fixture")
	cmd.MarkFlagRequired("receiver-type")

	return cmd
}
