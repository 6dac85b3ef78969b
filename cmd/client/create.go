package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/evgeniy-krivenko/minds/internal/api/minds/converter"
	v1 "github.com/evgeniy-krivenko/minds/pkg/api/minds/v1"
)

var createCmd = &cobra.Command{
	Use:   "create [content...]",
	Short: "Create a mind; arguments are joined with spaces",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		content := strings.Join(args, " ")

		return withClient(func(c v1.MindAPIClient) error {
			resp, err := c.CreateMind(ctx, wrapperspb.String(content))
			if err != nil {
				return fmt.Errorf("create mind: %v", err)
			}

			mind, err := converter.ConvertProtoToMind(resp)
			if err != nil {
				return fmt.Errorf("decode mind: %v", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Mind created: %d\n", mind.ID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
