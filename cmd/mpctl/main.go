package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"mpbridge/pkg/mpclient"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "mpctl",
		Short:        "mpctl - talk to a Mercado Pago bridge",
		Version:      Version,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("url", envOr("MPCTL_URL", "http://localhost:8080/api/mp"), "Base URL of the Mercado Pago routes")
	root.PersistentFlags().Duration("timeout", 30*time.Second, "Request timeout")

	root.AddCommand(checkoutCmd())
	root.AddCommand(subscribeCmd())
	root.AddCommand(configCmd())
	root.AddCommand(eventsCmd())
	root.AddCommand(signCmd())

	return root
}

func newClient(cmd *cobra.Command) *mpclient.Client {
	url, _ := cmd.Flags().GetString("url")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	return mpclient.New(url, mpclient.WithTimeout(timeout))
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
