package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/LukeCarrier/signin/internal/domain"
	"github.com/LukeCarrier/signin/internal/lookup"
	"github.com/spf13/cobra"
)

var (
	lookupEndpoint string
	lookupTimeout  time.Duration
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <username>",
	Short: "Resolve a username against the domain lookup endpoint",
	Long: `Sends a username to the check_domain service endpoint and prints the
resolved email and home domain, or the structured error the service
returned. Useful for checking routing without driving the sign-in form.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := lookup.New(lookupEndpoint, lookupTimeout)

		ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
		defer cancel()

		res, err := client.Lookup(ctx, args[0])
		if err != nil {
			log.Fatalf("Lookup failed: %v", err)
		}

		if res.Failed() {
			fmt.Printf("Service error: %s\n", errorCodeLabel(res.Code))
			return
		}

		email := "(none)"
		if res.Email != nil {
			email = *res.Email
		}
		fmt.Printf("Email:  %s\n", email)
		fmt.Printf("Domain: %s\n", res.Domain)
	},
}

func errorCodeLabel(code domain.ErrorCode) string {
	switch code {
	case domain.CodeInvalidParameter:
		return "invalid parameter"
	case domain.CodeMultipleRecords:
		return "multiple records found"
	default:
		return "unexpected failure"
	}
}

func init() {
	lookupCmd.Flags().StringVar(&lookupEndpoint, "endpoint", "http://127.0.0.1:8080/local/signin/service/check_domain", "check_domain endpoint URL")
	lookupCmd.Flags().DurationVar(&lookupTimeout, "timeout", 5*time.Second, "request timeout")
	rootCmd.AddCommand(lookupCmd)
}
