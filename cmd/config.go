package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/contaplus/cxc/config"
	"github.com/spf13/cobra"
)

// configCommands prints the effective configuration after file, env and
// defaults have been merged. API keys are masked.
func configCommands() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the computed configuration",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Fetch()
			if err != nil {
				log.Fatalf("Error getting config: %v\n", err)
			}

			masked := *cfg
			masked.Ledger.APIKey = mask(masked.Ledger.APIKey)
			masked.TransactionSource.APIKey = mask(masked.TransactionSource.APIKey)
			masked.EntriesAPI.APIKey = mask(masked.EntriesAPI.APIKey)

			data, err := json.MarshalIndent(masked, "", "    ")
			if err != nil {
				log.Fatalf("Error printing config: %v\n", err)
			}

			fmt.Println(string(data))
		},
	}
	return cmd
}

func mask(secret string) string {
	if len(secret) <= 4 {
		if secret == "" {
			return ""
		}
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
