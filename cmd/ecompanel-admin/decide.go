package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/target/ecompanel-ui/internal/domain/access"
)

type decisionReport struct {
	Path     string `json:"path"`
	State    string `json:"state"`
	Guarded  bool   `json:"guarded"`
	Decision string `json:"decision"`
	Location string `json:"location,omitempty"`
}

func newDecideCmd() *cobra.Command {
	var (
		path   string
		token  string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Print the route guard decision for a path",
		Long: `Evaluate the route guard for a navigation without starting the server.

Examples:
  ecompanel-admin decide --path /admin/orders
  ecompanel-admin decide --path /login --token abc123 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printDecision(cmd, buildDecisionReport(path, token), asJSON)
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "request path to evaluate")
	cmd.Flags().StringVar(&token, "token", "", "session token value; omit for an anonymous visitor")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the decision as JSON")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

func buildDecisionReport(path, token string) decisionReport {
	d := access.Decide(path, token)
	state := "anonymous"
	if access.StateOf(token) == access.Authenticated {
		state = "authenticated"
	}
	return decisionReport{
		Path:     path,
		State:    state,
		Guarded:  access.IsGuarded(path),
		Decision: d.String(),
		Location: d.Location(),
	}
}

func printDecision(cmd *cobra.Command, r decisionReport, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	if err := writef(out, "path:     %s\nstate:    %s\nguarded:  %t\ndecision: %s\n", r.Path, r.State, r.Guarded, r.Decision); err != nil {
		return err
	}
	if r.Location != "" {
		return writef(out, "location: %s\n", r.Location)
	}
	return nil
}
