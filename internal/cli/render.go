package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	goterm "golang.org/x/term"

	"github.com/yaklabco/gomdview/internal/logging"
	"github.com/yaklabco/gomdview/internal/ui/term"
	"github.com/yaklabco/gomdview/pkg/config"
	"github.com/yaklabco/gomdview/pkg/fsutil"
	goldmarkparser "github.com/yaklabco/gomdview/pkg/parser/goldmark"
	"github.com/yaklabco/gomdview/pkg/preview"
	"github.com/yaklabco/gomdview/pkg/selection"
	"github.com/yaklabco/gomdview/pkg/vault"
)

type renderFlags struct {
	mode    string
	cursor  int
	selects []string
	vault   string
	width   int
}

func newRenderCommand(opts *rootOptions) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a Markdown file as a live preview",
		Long:  renderLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts, flags)
		},
	}

	cmd.Flags().StringVar(&flags.mode, "mode", "", "preview mode: editable or read-only")
	cmd.Flags().IntVar(&flags.cursor, "cursor", -1, "cursor byte offset; the construct under it is revealed as raw markup")
	cmd.Flags().StringArrayVar(&flags.selects, "select", nil, "selection range as anchor:head (repeatable)")
	cmd.Flags().StringVar(&flags.vault, "vault", "", "directory to resolve embedded image names against")
	cmd.Flags().IntVar(&flags.width, "width", 0, "output width in columns (0 = auto)")

	return cmd
}

const renderLongDescription = `Render a Markdown file as a live preview.

In editable mode (the default when a cursor is given), constructs touched
by the cursor or selection show their raw markup; everything else is
shown decorated. In read-only mode nothing is ever revealed.

Examples:
  gomdview render README.md               # Fully decorated preview
  gomdview render --cursor 42 notes.md    # Reveal the construct at offset 42
  gomdview render --select 10:25 notes.md # Reveal constructs in the range
  gomdview render --vault ~/notes doc.md  # Resolve ![[image]] embeds
  gomdview render --mode read-only doc.md`

func runRender(cmd *cobra.Command, path string, opts *rootOptions, flags *renderFlags) error {
	logger := logging.Default()
	ctx := cmd.Context()

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	if err := applyRenderFlags(cfg, flags); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	parser := goldmarkparser.New()
	doc, err := parser.Parse(ctx, content)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	sel, err := parseSelection(flags)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	mode := preview.ModeReadOnly
	if cfg.Mode == config.ModeEditable {
		mode = preview.ModeEditable
	}

	engine := preview.New(preview.Options{
		Math:      cfg.Scans.Math,
		Highlight: cfg.Scans.Highlight,
		Embeds:    cfg.Scans.Embeds,
		Tables:    cfg.Scans.Tables,
	})
	set := engine.Compute(doc, sel, mode)

	logger.Debug("computed decorations",
		logging.FieldPath, path,
		logging.FieldMode, mode.String(),
		logging.FieldDecorations, set.Len(),
		logging.FieldDropped, len(set.Dropped),
	)

	width := flags.width
	if width <= 0 {
		if w, _, err := goterm.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	renderer := &term.Renderer{
		Styles:     term.NewStyles(term.ColorEnabled(opts.color, os.Stdout)),
		Typesetter: term.Typesetter{},
		Width:      width,
	}
	if cfg.Vault != "" {
		renderer.Resolver = vault.New(cfg.Vault)
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.Render(ctx, doc, set))

	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultFileName
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %w", ErrConfig, path, err)
	}

	return cfg, nil
}

// applyRenderFlags overlays explicitly provided flags onto the config.
func applyRenderFlags(cfg *config.Config, flags *renderFlags) error {
	if flags.mode != "" {
		cfg.Mode = config.Mode(flags.mode)
	} else if flags.cursor >= 0 || len(flags.selects) > 0 {
		// A cursor only makes sense while editing.
		cfg.Mode = config.ModeEditable
	}

	if flags.vault != "" {
		cfg.Vault = flags.vault
	}

	return cfg.Validate()
}

func parseSelection(flags *renderFlags) (selection.State, error) {
	var ranges []selection.Range

	if flags.cursor >= 0 {
		ranges = append(ranges, selection.Cursor(flags.cursor))
	}

	for _, raw := range flags.selects {
		anchorStr, headStr, ok := strings.Cut(raw, ":")
		if !ok {
			return selection.State{}, fmt.Errorf("selection %q: want anchor:head", raw)
		}

		anchor, err := strconv.Atoi(strings.TrimSpace(anchorStr))
		if err != nil {
			return selection.State{}, fmt.Errorf("selection %q: %w", raw, err)
		}

		head, err := strconv.Atoi(strings.TrimSpace(headStr))
		if err != nil {
			return selection.State{}, fmt.Errorf("selection %q: %w", raw, err)
		}

		if anchor < 0 || head < 0 {
			return selection.State{}, fmt.Errorf("selection %q: offsets must be non-negative", raw)
		}

		ranges = append(ranges, selection.NewRange(anchor, head))
	}

	return selection.NewState(ranges...), nil
}
