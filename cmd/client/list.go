package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/evgeniy-krivenko/minds/internal/api/minds/converter"
	v1 "github.com/evgeniy-krivenko/minds/pkg/api/minds/v1"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all minds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		return withClient(func(c v1.MindAPIClient) error {
			resp, err := c.ListMinds(ctx, &emptypb.Empty{})
			if err != nil {
				return fmt.Errorf("list minds: %v", err)
			}

			minds, err := converter.ConvertProtoToMinds(resp)
			if err != nil {
				return fmt.Errorf("decode minds: %v", err)
			}

			out := cmd.OutOrStdout()

			if listJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(converter.ConvertMindsToResponse(minds))
			}

			for _, m := range minds {
				fmt.Fprintf(out, "%d\t%s\t%s\n", m.ID, m.PublishTime.Format(time.RFC3339), m.Content)
			}

			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
