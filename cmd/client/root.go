package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1 "github.com/evgeniy-krivenko/minds/pkg/api/minds/v1"
	"github.com/evgeniy-krivenko/minds/pkg/logger/slogx"
)

var (
	addr     string
	timeout  time.Duration
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "minds-client",
	Short:         "Command line client for the minds gRPC API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := slogx.InitGlobal(os.Stderr, logLevel, true); err != nil {
			return fmt.Errorf("init logger: %v", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "127.0.0.1:50051", "gRPC address of the minds server")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Timeout of a single command")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level")
}

// withClient dials the server, runs f and closes the connection.
func withClient(f func(c v1.MindAPIClient) error) error {
	conn, err := grpc.NewClient(
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("new client conn: %v", err)
	}
	defer conn.Close()

	return f(v1.NewMindAPIClient(conn))
}
