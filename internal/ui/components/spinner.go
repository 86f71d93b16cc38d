package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerType selects the spinner size.
type SpinnerType string

const (
	SpinnerTypeMini   SpinnerType = "mini"
	SpinnerTypeNormal SpinnerType = "normal"
	SpinnerTypeBig    SpinnerType = "big"
)

// SpinnerOptions configure a Spinner.
type SpinnerOptions struct {
	// Type defaults to SpinnerTypeNormal.
	Type SpinnerType
	// Caption replaces the localized loading caption.
	Caption string
}

// Spinner is an animated loading indicator with a caption. Mini spinners
// put the caption beside the glyph; normal and big ones put it below.
type Spinner struct {
	BaseComponent
	opts  SpinnerOptions
	model spinner.Model
}

// NewSpinner creates a spinner. Call Init to start the animation.
func NewSpinner(opts SpinnerOptions) *Spinner {
	if opts.Type == "" {
		opts.Type = SpinnerTypeNormal
	}
	return &Spinner{
		BaseComponent: NewBaseComponent(),
		opts:          opts,
		model:         spinner.New(spinner.WithSpinner(spinnerFrames(opts.Type))),
	}
}

// spinnerFrames doubles every frame of the normal set for big spinners.
func spinnerFrames(t SpinnerType) spinner.Spinner {
	switch t {
	case SpinnerTypeMini:
		return spinner.MiniDot
	case SpinnerTypeBig:
		frames := make([]string, len(spinner.Dot.Frames))
		for i, f := range spinner.Dot.Frames {
			frames[i] = strings.Repeat(f, 2)
		}
		return spinner.Spinner{Frames: frames, FPS: spinner.Dot.FPS}
	default:
		return spinner.Dot
	}
}

// Type returns the spinner size.
func (s *Spinner) Type() SpinnerType { return s.opts.Type }

// Init starts the animation.
func (s *Spinner) Init() tea.Cmd {
	return s.model.Tick
}

// Update advances the animation on its own tick messages.
func (s *Spinner) Update(msg tea.Msg) (*Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return s, cmd
}

// Caption returns the caption drawn under locale.
func (s *Spinner) Caption(locale LocaleContext) string {
	if s.opts.Caption != "" {
		return s.opts.Caption
	}
	return locale.Text(LocaleSpinner, KeyLoading)
}

// Glyph returns the current animation frame.
func (s *Spinner) Glyph() string {
	return s.model.View()
}

// View renders the spinner with the default context.
func (s *Spinner) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the glyph and the caption.
func (s *Spinner) ViewWithContext(ctx RenderContext) string {
	tokens := ctx.Theme.Spinner
	glyph := lipgloss.NewStyle().Foreground(tokens.Glyph).Render(s.Glyph())
	caption := TypographyStyle(ctx.Theme, TypographyVariantCaption).
		Foreground(tokens.Caption).
		Render(s.Caption(ctx.Locale))

	var body string
	if s.opts.Type == SpinnerTypeMini {
		body = lipgloss.JoinHorizontal(lipgloss.Center, glyph, " ", caption)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Center, glyph, caption)
	}

	style := variantStyle(s.ComputeStyle(ctx.Theme), ctx.Theme, s.opts.Type)
	return style.Render(body)
}
