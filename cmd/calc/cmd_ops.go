package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"calcnerd/internal/calc"
	"calcnerd/internal/locale"
)

var opsStyle string

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "Show the supported operations",
	Args:  cobra.NoArgs,
	RunE:  showOperations,
}

func init() {
	opsCmd.Flags().StringVar(&opsStyle, "style", "auto", "Markdown style (auto, dark, light, notty, ascii)")
}

func showOperations(cmd *cobra.Command, args []string) error {
	msgs, err := locale.Lookup(locale.Language(cfg.Language))
	if err != nil {
		return err
	}

	out, err := renderMarkdown(operationsMarkdown(msgs), opsStyle)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// operationsMarkdown documents the menu as a markdown table.
func operationsMarkdown(msgs locale.Messages) string {
	var b strings.Builder
	b.WriteString("# Operations\n\n")
	b.WriteString("| Code | Symbol | Operation | Notes |\n")
	b.WriteString("|------|--------|-----------|-------|\n")
	for _, op := range calc.Operations {
		note := ""
		switch op {
		case calc.Divide:
			note = "divisor must not be 0"
		case calc.Exponentiation:
			note = "negative base with fractional power gives NaN"
		}
		fmt.Fprintf(&b, "| %d | `%s` | %s | %s |\n", op.Code(), op.Symbol(), msgs.OperationNames[op], note)
	}
	fmt.Fprintf(&b, "\nQuit with any of: %s. Continue with any of: %s.\n",
		quoteAll(cfg.QuitWords), quoteAll(cfg.ConfirmWords))
	return b.String()
}

func renderMarkdown(md, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(100)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

func quoteAll(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = "'" + w + "'"
	}
	return strings.Join(quoted, ", ")
}
