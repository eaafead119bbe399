package main

import (
	"fmt"
	"time"

	"mpbridge/internal/adapter/persistence/repository"
	"mpbridge/internal/config"
	"mpbridge/internal/infrastructure/database"
	"mpbridge/internal/infrastructure/payments"

	"github.com/spf13/cobra"
)

func eventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events [resourceId]",
		Short: "List journaled events of a payment or subscription",
		Long: `Read the event journal directly from DynamoDB. Connection settings come
from EVENTS_TABLE, AWS_REGION and DYNAMODB_ENDPOINT.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ddb, err := database.ConnectDynamoDB(cmd.Context(), database.DynamoDBOptions{
				Region:   cfg.Journal.Region,
				Endpoint: cfg.Journal.Endpoint,
			})
			if err != nil {
				return err
			}
			events, err := repository.NewEventDynamoRepository(ddb, cfg.Journal.Table).ListByResourceID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(cmd, events)
			}
			if len(events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no events")
				return nil
			}
			for _, e := range events {
				fmt.Fprintf(cmd.OutOrStdout(), "%-26s %-12s %s\n", e.Type, e.Data.Status, e.Webhook.Action)
			}
			return nil
		},
	}

	cmd.Flags().BoolP("json", "j", false, "Output as JSON")

	return cmd
}

func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign [dataId]",
		Short: "Print an x-signature header for a test webhook delivery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, _ := cmd.Flags().GetString("secret")
			if secret == "" {
				secret = envOr("MERCADOPAGO_WEBHOOK_SECRET", "")
			}
			if secret == "" {
				return fmt.Errorf("--secret or MERCADOPAGO_WEBHOOK_SECRET is required")
			}
			requestID, _ := cmd.Flags().GetString("request-id")
			ts, _ := cmd.Flags().GetString("ts")
			if ts == "" {
				ts = fmt.Sprint(time.Now().UnixMilli())
			}

			hash := payments.NewWebhookValidator(secret).Sign(payments.Manifest(args[0], requestID, ts))
			fmt.Fprintf(cmd.OutOrStdout(), "x-signature: ts=%s,v1=%s\n", ts, hash)
			if requestID != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "x-request-id: %s\n", requestID)
			}
			return nil
		},
	}

	cmd.Flags().String("secret", "", "Webhook secret")
	cmd.Flags().String("request-id", "", "x-request-id to sign")
	cmd.Flags().String("ts", "", "Timestamp; defaults to now in milliseconds")

	return cmd
}
