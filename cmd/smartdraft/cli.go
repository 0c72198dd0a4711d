package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/softco/smartdraft/internal/app"
	"github.com/softco/smartdraft/internal/assistant"
	"github.com/softco/smartdraft/internal/contract"
	"github.com/softco/smartdraft/internal/deal"
	"github.com/softco/smartdraft/internal/errors"
	"github.com/softco/smartdraft/internal/export"
	"github.com/softco/smartdraft/internal/focus"
	"github.com/softco/smartdraft/internal/playbook"
	"github.com/softco/smartdraft/internal/redline"
	"github.com/softco/smartdraft/internal/search"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(a *app.App) *cli.App {
	cliApp := &cli.App{
		Name:    "smartdraft",
		Usage:   "AI-assisted contract drafting",
		Version: Version,
		Commands: []*cli.Command{
			searchCmd(a),
			clausesCmd(a),
			insightsCmd(),
			whyCmd(),
			redlinesCmd(a),
			respondCmd(a),
			focusCmd(a),
			sessionCmd(a),
			finalizeCmd(a),
			chatCmd(a),
			ocrCmd(a),
			dealCmd(a),
			auditCmd(a),
			documentCmd(a),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	cliApp.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return cliApp
}

// searchCmd creates the search command.
func searchCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search contract clauses by keyword",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "Clause type filter (e.g. Payment, Liability)"},
		},
		Action: func(c *cli.Context) error {
			query := ""
			if c.NArg() > 0 {
				query = c.Args().First()
			}

			result := search.Search(a.Index, query, contract.ClauseType(c.String("type")))
			return outputJSON(result)
		},
	}
}

// clausesCmd creates the clauses command.
func clausesCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:      "clauses",
		Usage:     "List contract clauses, or show one by anchor id",
		ArgsUsage: "[anchor-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				anchorID := c.Args().First()
				clause, ok := a.Index.ByAnchor(anchorID)
				if !ok {
					return outputError(errors.NewNotFound(anchorID))
				}
				return outputJSON(clause)
			}

			return outputJSON(map[string]any{
				"title":   contract.DocumentTitle,
				"clauses": a.Index.All(),
				"types":   a.Index.Types(),
			})
		},
	}
}

// insightsCmd creates the insights command.
func insightsCmd() *cli.Command {
	return &cli.Command{
		Name:  "insights",
		Usage: "Show playbook risk insights for the document",
		Action: func(c *cli.Context) error {
			return outputJSON(playbook.DocumentInsights())
		},
	}
}

// whyCmd creates the why command.
func whyCmd() *cli.Command {
	return &cli.Command{
		Name:      "why",
		Usage:     "Explain the rationale behind an insight or redline suggestion",
		ArgsUsage: "<rationale-key>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("rationale key is required"))
			}

			key := c.Args().First()
			why, ok := playbook.Why(key)
			if !ok {
				return outputError(errors.NewNotFound(key))
			}
			return outputJSON(why)
		},
	}
}

// redlinesCmd creates the redlines command.
func redlinesCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "redlines",
		Usage: "List the counterparty's proposed changes with playbook verdicts",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "chat", Usage: "Ask the assistant about a change (requires positional change id)"},
		},
		ArgsUsage: "[change-id]",
		Action: func(c *cli.Context) error {
			if msg := c.String("chat"); msg != "" {
				if c.NArg() < 1 {
					return outputError(errors.NewInvalidRequest("change id is required with --chat"))
				}
				change, err := a.Redlines.Get(c.Args().First())
				if err != nil {
					return outputError(err)
				}
				return outputJSON(assistant.AskAboutChange(change.ClauseType, change.Verdict.Severity, msg))
			}

			if c.NArg() > 0 {
				change, err := a.Redlines.Get(c.Args().First())
				if err != nil {
					return outputError(err)
				}
				return outputJSON(change)
			}

			return outputJSON(a.Redlines.List())
		},
	}
}

// respondCmd creates the respond command.
func respondCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:      "respond",
		Usage:     "Respond to a proposed change: accept, counter, or discuss",
		ArgsUsage: "<change-id> <accept|counter|discuss>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return outputError(errors.NewInvalidRequest("usage: respond <change-id> <accept|counter|discuss>"))
			}

			result, err := a.Redlines.Respond(c.Args().Get(0), redline.Action(c.Args().Get(1)))
			if err != nil {
				return outputError(err)
			}
			return outputJSON(result)
		},
	}
}

// focusCmd creates the focus command with its subcommands.
func focusCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "focus",
		Usage: "Manage the Focus bookmark watchlist",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Bookmark a document anchor",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "anchor", Aliases: []string{"a"}, Required: true, Usage: "Document anchor id"},
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Required: true, Usage: "Display title"},
					&cli.StringFlag{Name: "snippet", Usage: "Optional excerpt"},
					&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Value: "clause", Usage: "Creating surface: clause|insight|redline|search|ocr"},
					&cli.StringFlag{Name: "severity", Usage: "Optional risk tier: low|medium|high"},
					&cli.StringFlag{Name: "note", Aliases: []string{"n"}, Usage: "Optional note (max 140 chars)"},
				},
				Action: func(c *cli.Context) error {
					item, err := a.Focus.Add(focus.AddInput{
						AnchorID: c.String("anchor"),
						Title:    c.String("title"),
						Snippet:  c.String("snippet"),
						Source:   contract.Source(c.String("source")),
						Severity: contract.Severity(c.String("severity")),
						Note:     c.String("note"),
					})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(item)
				},
			},
			{
				Name:      "remove",
				Usage:     "Remove a focus item",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidRequest("focus item id is required"))
					}
					id := c.Args().First()
					removed, err := a.Focus.Remove(id)
					if err != nil {
						return outputError(err)
					}
					if !removed {
						return outputError(errors.NewNotFound(id))
					}
					return outputJSON(map[string]any{"removed": id})
				},
			},
			{
				Name:      "resolve",
				Usage:     "Toggle the resolved flag on a focus item",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidRequest("focus item id is required"))
					}
					id := c.Args().First()
					item, err := a.Focus.ToggleResolved(id)
					if err != nil {
						return outputError(err)
					}
					if item == nil {
						return outputError(errors.NewNotFound(id))
					}
					return outputJSON(item)
				},
			},
			{
				Name:      "note",
				Usage:     "Replace the note on a focus item",
				ArgsUsage: "<id> <note>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 2 {
						return outputError(errors.NewInvalidRequest("usage: focus note <id> <note>"))
					}
					item, err := a.Focus.UpdateNote(c.Args().Get(0), c.Args().Get(1))
					if err != nil {
						return outputError(err)
					}
					return outputJSON(item)
				},
			},
			{
				Name:  "list",
				Usage: "List all focus items in creation order",
				Action: func(c *cli.Context) error {
					items, err := a.Focus.List()
					if err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]any{"items": items, "count": len(items)})
				},
			},
			{
				Name:  "export",
				Usage: "Render the watchlist as a plain-text summary",
				Action: func(c *cli.Context) error {
					items, err := a.Focus.List()
					if err != nil {
						return outputError(err)
					}
					fmt.Print(export.FocusSummary(items))
					return nil
				},
			},
		},
	}
}

// sessionCmd creates the session command with its subcommands.
func sessionCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "session",
		Usage: "Inspect and manage the draft session",
		Subcommands: []*cli.Command{
			{
				Name:  "status",
				Usage: "Show the dirty flag and last save time",
				Action: func(c *cli.Context) error {
					status, err := a.Session.Current()
					if err != nil {
						return outputError(err)
					}
					return outputJSON(status)
				},
			},
			{
				Name:  "save",
				Usage: "Save the draft (no-op when there are no unsaved edits)",
				Action: func(c *cli.Context) error {
					saved, err := a.Session.Save()
					if err != nil {
						return outputError(err)
					}
					status, err := a.Session.Current()
					if err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]any{"saved": saved, "status": status})
				},
			},
			{
				Name:  "reset",
				Usage: "Discard all session state and start fresh",
				Action: func(c *cli.Context) error {
					if err := a.Session.Reset(); err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]any{"reset": true})
				},
			},
		},
	}
}

// finalizeCmd creates the finalize command.
func finalizeCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "finalize",
		Usage: "Check whether finalizing the draft deserves a warning",
		Action: func(c *cli.Context) error {
			decision, err := a.Focus.ShouldWarnBeforeFinalize()
			if err != nil {
				return outputError(err)
			}
			return outputJSON(decision)
		},
	}
}

// chatCmd creates the chat command.
func chatCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:      "chat",
		Usage:     "Ask the drafting assistant about the document",
		ArgsUsage: "<message>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("message is required"))
			}
			return outputJSON(assistant.Ask(c.Args().First()))
		},
	}
}

// ocrCmd creates the ocr command.
func ocrCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:      "ocr",
		Usage:     "Import a scanned contract; low-confidence clauses are flagged for review",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("file name is required"))
			}

			result, err := a.OCR.Apply(c.Args().First())
			if err != nil {
				return outputError(err)
			}
			return outputJSON(result)
		},
	}
}

// dealCmd creates the deal command.
func dealCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "deal",
		Usage: "Validate new-deal intake and generate a draft",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "client", Required: true, Usage: "Client legal name (max 80 chars)"},
			&cli.StringFlag{Name: "type", Value: "msa", Usage: "Contract type: msa|sow|nda|sla"},
			&cli.Int64Flag{Name: "value", Required: true, Usage: "Deal value in whole dollars"},
			&cli.IntFlag{Name: "term", Value: 12, Usage: "Contract term in months (1-120)"},
			&cli.StringFlag{Name: "start", Required: true, Usage: "Effective date, YYYY-MM-DD"},
			&cli.StringFlag{Name: "special-terms", Usage: "Optional special terms (max 500 chars)"},
		},
		Action: func(c *cli.Context) error {
			draft, err := a.Deals.Generate(deal.Input{
				ClientName:   c.String("client"),
				ContractType: deal.ContractType(c.String("type")),
				Value:        c.Int64("value"),
				TermMonths:   c.Int("term"),
				StartDate:    c.String("start"),
				SpecialTerms: c.String("special-terms"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(draft)
		},
	}
}

// auditCmd creates the audit command.
func auditCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "audit",
		Usage: "Show the audit trail of user-visible actions",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "clear", Usage: "Discard the audit trail"},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("clear") {
				if err := a.Audit.Clear(); err != nil {
					return outputError(err)
				}
				return outputJSON(map[string]any{"cleared": true})
			}

			events, err := a.Audit.List()
			if err != nil {
				return outputError(err)
			}
			return outputJSON(map[string]any{"events": events, "count": len(events)})
		},
	}
}

// documentCmd creates the document command.
func documentCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "document",
		Usage: "Export the contract document",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "markdown", Usage: "Output format: markdown|html"},
		},
		Action: func(c *cli.Context) error {
			switch c.String("format") {
			case "markdown":
				fmt.Print(export.DocumentMarkdown(a.Index))
				return nil
			case "html":
				content, err := export.DocumentHTML(a.Index)
				if err != nil {
					return outputError(err)
				}
				fmt.Print(content)
				return nil
			default:
				return outputError(errors.NewInvalidRequest(fmt.Sprintf("unknown format %q", c.String("format"))))
			}
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if dErr, ok := err.(*errors.DraftError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", dErr.Code, dErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
