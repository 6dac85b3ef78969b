package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/types/known/wrapperspb"

	v1 "github.com/evgeniy-krivenko/minds/pkg/api/minds/v1"
	"github.com/evgeniy-krivenko/minds/pkg/logger/slogx"
)

var (
	fillCount       int
	fillConcurrency int
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Concurrently create sample minds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fillConcurrency < 1 {
			return fmt.Errorf("concurrency must be positive, got %d", fillConcurrency)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		messages := getMessages()

		return withClient(func(c v1.MindAPIClient) error {
			eg, ctx := errgroup.WithContext(ctx)
			eg.SetLimit(fillConcurrency)

			for i := range fillCount {
				content := messages[i%len(messages)]

				eg.Go(func() error {
					if _, err := c.CreateMind(ctx, wrapperspb.String(content)); err != nil {
						return fmt.Errorf("create mind #%d: %v", i, err)
					}

					slogx.Debug(ctx, "mind created", slog.Int("n", i))
					return nil
				})
			}

			if err := eg.Wait(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Minds created: %d\n", fillCount)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(fillCmd)
	fillCmd.Flags().IntVarP(&fillCount, "count", "n", 10, "Number of minds to create")
	fillCmd.Flags().IntVar(&fillConcurrency, "concurrency", 4, "Number of parallel requests")
}
