package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/wrapperspb"

	v1 "github.com/evgeniy-krivenko/minds/pkg/api/minds/v1"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a mind; deleting a missing id succeeds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %v", args[0], err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		return withClient(func(c v1.MindAPIClient) error {
			if _, err := c.DeleteMind(ctx, wrapperspb.UInt64(id)); err != nil {
				return fmt.Errorf("delete mind: %v", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Mind deleted: %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
