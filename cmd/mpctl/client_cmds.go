package main

import (
	"encoding/json"
	"fmt"

	"mpbridge/internal/domain/entities"

	"github.com/spf13/cobra"
)

func checkoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout [productId]",
		Short: "Create a checkout preference",
		Long: `Create a checkout preference for a configured product, or for the
items given with --items as a JSON array.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := entities.CheckoutRequest{}
			if len(args) == 1 {
				req.ProductID = args[0]
			}
			if raw, _ := cmd.Flags().GetString("items"); raw != "" {
				if err := json.Unmarshal([]byte(raw), &req.Items); err != nil {
					return fmt.Errorf("--items: %w", err)
				}
			}
			if req.ProductID == "" && len(req.Items) == 0 {
				return fmt.Errorf("a productId or --items is required")
			}
			req.Quantity, _ = cmd.Flags().GetInt("quantity")
			req.PayerEmail, _ = cmd.Flags().GetString("email")
			req.ExternalReference, _ = cmd.Flags().GetString("ref")

			out, err := newClient(cmd).Checkout(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}

	cmd.Flags().String("items", "", `Items as JSON, e.g. '[{"title":"Book","unitPrice":10,"quantity":1}]'`)
	cmd.Flags().IntP("quantity", "q", 0, "Quantity of the configured product")
	cmd.Flags().StringP("email", "e", "", "Payer email")
	cmd.Flags().String("ref", "", "External reference")

	return cmd
}

func subscribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscribe [planId]",
		Short: "Create a subscription",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := entities.SubscribeRequest{}
			if len(args) == 1 {
				req.PlanID = args[0]
			}
			req.PayerEmail, _ = cmd.Flags().GetString("email")
			req.Reason, _ = cmd.Flags().GetString("reason")
			req.TransactionAmount, _ = cmd.Flags().GetFloat64("amount")
			req.Frequency, _ = cmd.Flags().GetInt("frequency")
			freqType, _ := cmd.Flags().GetString("frequency-type")
			req.FrequencyType = entities.FrequencyType(freqType)
			req.ExternalReference, _ = cmd.Flags().GetString("ref")

			out, err := newClient(cmd).Subscribe(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}

	cmd.Flags().StringP("email", "e", "", "Payer email (required)")
	cmd.Flags().String("reason", "", "Custom plan reason")
	cmd.Flags().Float64("amount", 0, "Custom plan amount")
	cmd.Flags().Int("frequency", 0, "Custom plan frequency")
	cmd.Flags().String("frequency-type", "", "Custom plan frequency type (days, months)")
	cmd.Flags().String("ref", "", "External reference")

	return cmd
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the public key exposed by the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := newClient(cmd).GetConfig(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
}
