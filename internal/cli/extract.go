package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"notes-to-tasks/internal/bootstrap"
	"notes-to-tasks/internal/model"
	"notes-to-tasks/internal/suggestion"
)

const (
	formatJSON = "json"
	formatText = "text"

	dueDateLayout = "Mon, 02 Jan 2006 15:04"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type extractOptions struct {
	configFile    string
	imagePath     string
	heuristicOnly bool
	now           string
	format        string
	verbose       bool
}

// extractResult is the JSON document printed by extract.
type extractResult struct {
	Suggestions    []model.TaskSuggestion `json:"suggestions"`
	Strategy       suggestion.Strategy    `json:"strategy"`
	Fallback       bool                   `json:"fallback"`
	FallbackReason string                 `json:"fallback_reason,omitempty"`
	ExtractedText  string                 `json:"extracted_text,omitempty"`
}

func newExtractCmd(build buildFunc) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract [FILE]",
		Short: "Extract task suggestions from a note",
		Long: `Extract task suggestions from a note file, from stdin when FILE is omitted or "-",
or from a photo of a note with --image.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, opts, build)
		},
	}

	cmd.Flags().StringVar(&opts.configFile, "config", "", "Path to config.yaml")
	cmd.Flags().StringVar(&opts.imagePath, "image", "", "Read a photo of a note instead of text")
	cmd.Flags().BoolVar(&opts.heuristicOnly, "heuristic-only", false, "Skip the AI extractor")
	cmd.Flags().StringVar(&opts.now, "now", "", "Reference time for relative dates (RFC3339)")
	cmd.Flags().StringVar(&opts.format, "format", formatText, "Output format: text or json")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log to stderr at the configured level")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string, opts *extractOptions, build buildFunc) error {
	if opts.format != formatText && opts.format != formatJSON {
		return fmt.Errorf("unknown format %q: use text or json", opts.format)
	}
	if opts.imagePath != "" && len(args) > 0 {
		return fmt.Errorf("--image cannot be combined with a note file")
	}

	var now time.Time
	if opts.now != "" {
		parsed, err := time.Parse(time.RFC3339, opts.now)
		if err != nil {
			return fmt.Errorf("invalid --now value: %w", err)
		}
		now = parsed
	}

	ctx := cmd.Context()
	uc, err := build(ctx, opts.configFile, bootstrap.Options{DisableAI: opts.heuristicOnly}, cmd.ErrOrStderr(), opts.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	sc := model.Scope{UserID: "cli", Username: os.Getenv("USER")}

	var out suggestion.SuggestOutput
	if opts.imagePath != "" {
		image, err := os.ReadFile(opts.imagePath)
		if err != nil {
			return fmt.Errorf("failed to read image: %w", err)
		}
		out, err = uc.SuggestFromImage(ctx, sc, suggestion.SuggestImageInput{Image: image, Now: now})
		if err != nil {
			return err
		}
	} else {
		text, err := readNote(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		out, err = uc.SuggestFromText(ctx, sc, suggestion.SuggestTextInput{
			Text:          text,
			HeuristicOnly: opts.heuristicOnly,
			Now:           now,
		})
		if err != nil {
			return err
		}
	}

	if opts.format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	return writeText(cmd.OutOrStdout(), out)
}

func readNote(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read note: %w", err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, out suggestion.SuggestOutput) error {
	suggestions := out.Suggestions
	if suggestions == nil {
		suggestions = []model.TaskSuggestion{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(extractResult{
		Suggestions:    suggestions,
		Strategy:       out.Strategy,
		Fallback:       out.Fallback,
		FallbackReason: out.FallbackReason,
		ExtractedText:  out.ExtractedText,
	})
}

func writeText(w io.Writer, out suggestion.SuggestOutput) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Strategy: %s", out.Strategy)
	if out.Fallback {
		fmt.Fprintf(&sb, " (fallback: %s)", out.FallbackReason)
	}
	sb.WriteString("\n")

	if len(out.Suggestions) == 0 {
		sb.WriteString("No tasks found.\n")
	}
	for i, s := range out.Suggestions {
		fmt.Fprintf(&sb, "%d. [%s] %s\n", i+1, strings.ToUpper(string(s.Priority)), s.Title)
		if s.DueDate != nil {
			fmt.Fprintf(&sb, "   due: %s\n", s.DueDate.Format(dueDateLayout))
		}
		if len(s.Tags) > 0 {
			fmt.Fprintf(&sb, "   tags: #%s\n", strings.Join(s.Tags, " #"))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
