package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"amdlingo-be/pkg/ai/master"
	"amdlingo-be/pkg/fetcher"

	"github.com/spf13/cobra"
)

type routeOptions struct {
	url       string
	mode      string
	allow     []string
	sessionID string
	asYAML    bool
	timeout   time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &routeOptions{}

	cmd := &cobra.Command{
		Use:   "route [text]",
		Short: "Show which worker would answer a support request",
		Long: `Run the mode router on a piece of support text.

Prints the chosen mode, how it was chosen (explicit, rules or scores),
the score of every mode and the preprocessed payload. When --url is set
or the text contains a link, the document is fetched.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd, opts, strings.Join(args, " "))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.url, "url", "", "document URL to fetch")
	flags.StringVar(&opts.mode, "mode", "", "explicit mode (document, code, error, hipify, api)")
	flags.StringSliceVar(&opts.allow, "allow", nil, "allowed modes, comma separated (default all)")
	flags.StringVar(&opts.sessionID, "session", "cli", "session id")
	flags.BoolVar(&opts.asYAML, "yaml", false, "print the decision as YAML")
	flags.DurationVar(&opts.timeout, "timeout", fetcher.DefaultTimeout, "document fetch timeout")

	cmd.AddCommand(newWatchCmd())
	return cmd
}

func runRoute(cmd *cobra.Command, opts *routeOptions, text string) error {
	req := master.RouteRequest{
		Text:         text,
		SessionID:    opts.sessionID,
		ExplicitMode: opts.mode,
		AllowedModes: opts.allow,
		URL:          opts.url,
	}

	router := master.NewRouter(fetcher.NewFetcher(opts.timeout, nil), nil)
	_, source, scores := router.Resolve(req)

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout+time.Second)
	defer cancel()
	decision := router.Route(ctx, req)

	report := newReport(decision, source, scores)
	if opts.asYAML {
		out, err := report.YAML()
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	report.Print(cmd.OutOrStdout())
	return nil
}
