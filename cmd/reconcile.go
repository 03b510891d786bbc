package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		log.Fatalf("Error encoding output: %v\n", err)
	}
	fmt.Println(string(data))
}

// reconcileCommands runs a single reconciliation pass and prints the view.
func reconcileCommands(app *cxcInstance) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "reconcile source transactions against the ledger and print the result",
		Run: func(cmd *cobra.Command, args []string) {
			view, err := app.cxc.LoadView(context.Background(), from, to)
			if err != nil {
				log.Fatal(err)
			}
			printJSON(view)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD), defaults to reconciliation.date_from")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD), defaults to reconciliation.date_to")
	return cmd
}

// postCommands loads the view and posts every pending row to the ledger.
func postCommands(app *cxcInstance) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "post pending consolidated rows to the ledger",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			if _, err := app.cxc.Load(ctx, from, to); err != nil {
				log.Fatal(err)
			}

			summary, view, err := app.cxc.Contabilizar(ctx)
			if err != nil && summary.BatchID == "" {
				log.Fatal(err)
			}
			if err != nil {
				log.Printf("posted, but reload failed: %v", err)
			}

			printJSON(map[string]interface{}{
				"summary": summary,
				"pending": view.PendingCount,
				"posted":  view.PostedCount,
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	return cmd
}
