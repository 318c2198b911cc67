package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"amdlingo-be/pkg/events"
	pktNats "amdlingo-be/pkg/nats"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var natsURL string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream analysis.completed events from NATS",
		RunE: func(cmd *cobra.Command, args []string) error {
			if natsURL == "" {
				return fmt.Errorf("no NATS URL: pass --nats or set NATS_URL")
			}

			sub, err := pktNats.NewSubscriber(natsURL, nil)
			if err != nil {
				return err
			}
			defer sub.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			return sub.Subscribe(ctx, events.AnalysisCompleted, "", func(_ context.Context, evt events.Event) error {
				printEvent(out, evt)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&natsURL, "nats", os.Getenv("NATS_URL"), "NATS server URL")
	return cmd
}

func printEvent(w io.Writer, evt events.Event) {
	data := evt.Payload()
	fmt.Fprintf(w, "%s ", evt.Timestamp().Local().Format(time.TimeOnly))
	color.New(color.FgCyan).Fprintf(w, "%-8v", data["mode"])
	fmt.Fprintf(w, " session=%v endpoint=%v latency=%vms\n", data["session_id"], data["endpoint"], data["latency_ms"])
}
