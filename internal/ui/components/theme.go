package components

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme names accepted by ThemeByName.
const (
	ThemeNameDefault = "default"
	ThemeNameLight   = "light"
	ThemeNameDark    = "dark"
)

// DefaultHintMaxWidth is the widest a hint popup renders, in cells.
const DefaultHintMaxWidth = 200

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
//
//   - Base: the primary background or brand color
//   - OnBase: text color that contrasts well with Base
//   - Muted: a desaturated variant of Base for subtle accents
//   - Contrast: an accent color that stands out against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Success ColourSet
	Warning ColourSet
	Danger  ColourSet
	Link    ColourSet
	Neutral ColourSet
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots.
var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteLink    PaletteSlot = func(p Palette) ColourSet { return p.Link }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantCaption
	TypographyVariantEmphasis
	TypographyVariantMuted
)

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Caption  lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// ToggleTokens colour the toggle track and handle.
type ToggleTokens struct {
	TrackChecked   lipgloss.TerminalColor
	TrackUnchecked lipgloss.TerminalColor
	Handle         lipgloss.TerminalColor
	WarningOutline lipgloss.TerminalColor
	ErrorOutline   lipgloss.TerminalColor
	FocusOutline   lipgloss.TerminalColor
	Disabled       lipgloss.TerminalColor
}

// HintTokens style the hint popup.
type HintTokens struct {
	Background lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor
	MaxWidth   int
}

// TopBarTokens style the top bar and its items.
type TopBarTokens struct {
	Background       lipgloss.TerminalColor
	Foreground       lipgloss.TerminalColor
	ActiveBackground lipgloss.TerminalColor
	Divider          lipgloss.TerminalColor
	Shadow           lipgloss.TerminalColor
}

// DropdownTokens style dropdown menus opened from the top bar.
type DropdownTokens struct {
	Background lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor
	Cursor     lipgloss.TerminalColor
}

// SpinnerTokens colour the spinner glyph and caption.
type SpinnerTokens struct {
	Glyph   lipgloss.TerminalColor
	Caption lipgloss.TerminalColor
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[interface{}]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[interface{}]StyleStrategy),
	}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant interface{}, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant interface{}) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme represents an immutable styling theme for components.
// All modification helpers return new theme values.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Spacing    spacingTable
	Typography TypographyScale
	Toggle     ToggleTokens
	Hint       HintTokens
	TopBar     TopBarTokens
	Dropdown   DropdownTokens
	Spinner    SpinnerTokens
	Variants   *VariantRegistry
}

// Normalize returns a theme with every derived field initialised.
func (t Theme) Normalize() Theme {
	if t.Spacing == (spacingTable{}) {
		t.Spacing = defaultSpacingTable()
	}
	if t.Hint.MaxWidth <= 0 {
		t.Hint.MaxWidth = DefaultHintMaxWidth
	}
	t.Typography = defaultTypography(t.Palette)
	t.Variants = NewVariantRegistry()
	registerToggleVariants(t.Variants)
	registerSpinnerVariants(t.Variants)
	registerItemVariants(t.Variants)
	registerBadgeVariants(t.Variants)
	return t
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      2,
		SpacingSizeMedium:     3,
		SpacingSizeLarge:      4,
	}
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the default theme for components.
func DefaultTheme() Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#1e79be", "#3d8fd1"),
			OnBase:   ac("#ffffff", "#ffffff"),
			Muted:    ac("#1363a3", "#2a6ea8"),
			Contrast: ac("#e3f2ff", "#0b2740"),
		},
		Surface: ColourSet{
			Base:     ac("#ffffff", "#1f1f1f"),
			OnBase:   ac("#333333", "#e6e6e6"),
			Muted:    ac("#f2f2f2", "#2b2b2b"),
			Contrast: ac("#1e79be", "#3d8fd1"),
		},
		Success: ColourSet{
			Base:     ac("#3f9726", "#5ab845"),
			OnBase:   ac("#ffffff", "#0f2a09"),
			Muted:    ac("#2f7b1b", "#46963a"),
			Contrast: ac("#ffffff", "#ffffff"),
		},
		Warning: ColourSet{
			Base:     ac("#f69c00", "#ffb133"),
			OnBase:   ac("#222222", "#222222"),
			Muted:    ac("#d38500", "#cc8a1f"),
			Contrast: ac("#222222", "#222222"),
		},
		Danger: ColourSet{
			Base:     ac("#d70c17", "#ff5a5f"),
			OnBase:   ac("#ffffff", "#2a0204"),
			Muted:    ac("#b00a12", "#cc4046"),
			Contrast: ac("#ffffff", "#ffffff"),
		},
		Link: ColourSet{
			Base:     ac("#3072c4", "#6aa6ea"),
			OnBase:   ac("#ffffff", "#0b1a2c"),
			Muted:    ac("#1c5aa8", "#4d8bd4"),
			Contrast: ac("#ffffff", "#ffffff"),
		},
		Neutral: ColourSet{
			Base:     ac("#808080", "#8c8c8c"),
			OnBase:   ac("#ffffff", "#111111"),
			Muted:    ac("#d9d9d9", "#3a3a3a"),
			Contrast: ac("#f2f2f2", "#f2f2f2"),
		},
	}

	theme := Theme{
		Name:    ThemeNameDefault,
		Palette: palette,
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
		Spacing: defaultSpacingTable(),
	}
	theme = theme.withWidgetTokens()
	return theme.Normalize()
}

// withWidgetTokens derives widget tokens from the palette.
func (t Theme) withWidgetTokens() Theme {
	p := t.Palette
	t.Toggle = ToggleTokens{
		TrackChecked:   p.Success.Base,
		TrackUnchecked: p.Neutral.Muted,
		Handle:         p.Surface.Base,
		WarningOutline: p.Warning.Base,
		ErrorOutline:   p.Danger.Base,
		FocusOutline:   p.Primary.Base,
		Disabled:       p.Neutral.Base,
	}
	t.Hint = HintTokens{
		Background: ac("#333333", "#4d4d4d"),
		Foreground: ac("#ffffff", "#ffffff"),
		MaxWidth:   DefaultHintMaxWidth,
	}
	t.TopBar = TopBarTokens{
		Background:       p.Surface.Base,
		Foreground:       p.Surface.OnBase,
		ActiveBackground: p.Surface.Muted,
		Divider:          p.Neutral.Muted,
		Shadow:           p.Neutral.Base,
	}
	t.Dropdown = DropdownTokens{
		Background: p.Surface.Base,
		Foreground: p.Surface.OnBase,
		Cursor:     p.Primary.Base,
	}
	t.Spinner = SpinnerTokens{
		Glyph:   p.Primary.Base,
		Caption: p.Neutral.Base,
	}
	return t
}

// DarkTheme returns a dark theme variant.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = ThemeNameDark

	theme.Palette.Surface = ColourSet{
		Base:     ac("#1f1f1f", "#141414"),
		OnBase:   ac("#e6e6e6", "#f0f0f0"),
		Muted:    ac("#2b2b2b", "#242424"),
		Contrast: ac("#3d8fd1", "#5aa4e0"),
	}
	theme.Palette.Neutral = ColourSet{
		Base:     ac("#8c8c8c", "#999999"),
		OnBase:   ac("#111111", "#0a0a0a"),
		Muted:    ac("#3a3a3a", "#333333"),
		Contrast: ac("#f2f2f2", "#f2f2f2"),
	}

	theme = theme.withWidgetTokens()
	theme.Hint.Background = ac("#e6e6e6", "#e6e6e6")
	theme.Hint.Foreground = ac("#1f1f1f", "#1f1f1f")
	return theme.Normalize()
}

// ThemeByName returns a registered theme.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ThemeNameDefault, ThemeNameLight:
		return DefaultTheme(), true
	case ThemeNameDark:
		return DarkTheme(), true
	default:
		return Theme{}, false
	}
}

// ThemeNames lists every name ThemeByName accepts.
func ThemeNames() []string {
	return []string{ThemeNameDark, ThemeNameDefault, ThemeNameLight}
}

var colourValue = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[0-9]{1,3})$`)

type colourBinding func(t *Theme, c string)

// variableBindings maps converter keys to theme tokens. Keys are the
// camelized names the variables command writes.
var variableBindings = map[string]colourBinding{
	"brand":                    func(t *Theme, c string) { t.Palette.Primary.Base = ac(c, c) },
	"textColorDefault":         func(t *Theme, c string) { t.Palette.Surface.OnBase = ac(c, c) },
	"bgDefault":                func(t *Theme, c string) { t.Palette.Surface.Base = ac(c, c) },
	"borderColorGrayLight":     func(t *Theme, c string) { t.Palette.Neutral.Muted = ac(c, c) },
	"errorMain":                func(t *Theme, c string) { t.Palette.Danger.Base = ac(c, c) },
	"warningMain":              func(t *Theme, c string) { t.Palette.Warning.Base = ac(c, c) },
	"successMain":              func(t *Theme, c string) { t.Palette.Success.Base = ac(c, c) },
	"linkColor":                func(t *Theme, c string) { t.Palette.Link.Base = ac(c, c) },
	"toggleBgChecked":          func(t *Theme, c string) { t.Toggle.TrackChecked = lipgloss.Color(c) },
	"toggleBg":                 func(t *Theme, c string) { t.Toggle.TrackUnchecked = lipgloss.Color(c) },
	"toggleHandleBg":           func(t *Theme, c string) { t.Toggle.Handle = lipgloss.Color(c) },
	"toggleBorderColorFocus":   func(t *Theme, c string) { t.Toggle.FocusOutline = lipgloss.Color(c) },
	"toggleBorderColorError":   func(t *Theme, c string) { t.Toggle.ErrorOutline = lipgloss.Color(c) },
	"toggleBorderColorWarning": func(t *Theme, c string) { t.Toggle.WarningOutline = lipgloss.Color(c) },
	"hintBgColor":              func(t *Theme, c string) { t.Hint.Background = lipgloss.Color(c) },
	"hintTextColor":            func(t *Theme, c string) { t.Hint.Foreground = lipgloss.Color(c) },
	"tbBg":                     func(t *Theme, c string) { t.TopBar.Background = lipgloss.Color(c) },
	"tbColor":                  func(t *Theme, c string) { t.TopBar.Foreground = lipgloss.Color(c) },
	"tbShadow":                 func(t *Theme, c string) { t.TopBar.Shadow = lipgloss.Color(c) },
	"tbDividerColor":           func(t *Theme, c string) { t.TopBar.Divider = lipgloss.Color(c) },
	"dropdownBg":               func(t *Theme, c string) { t.Dropdown.Background = lipgloss.Color(c) },
	"dropdownMenuHover":        func(t *Theme, c string) { t.Dropdown.Cursor = lipgloss.Color(c) },
	"spinnerColor":             func(t *Theme, c string) { t.Spinner.Glyph = lipgloss.Color(c) },
	"spinnerCaptionColor":      func(t *Theme, c string) { t.Spinner.Caption = lipgloss.Color(c) },
}

// ThemeFromVariables overlays converted Less variables onto base. Palette
// variables are applied first so widget tokens derived from them follow,
// then widget-specific variables win. Unknown keys and values that are not
// colours are ignored.
func ThemeFromVariables(base Theme, vars map[string]string) Theme {
	theme := base
	if len(vars) == 0 {
		return theme.Normalize()
	}

	paletteKeys := map[string]bool{
		"brand": true, "textColorDefault": true, "bgDefault": true, "borderColorGrayLight": true,
		"errorMain": true, "warningMain": true, "successMain": true, "linkColor": true,
	}

	touchedPalette := false
	for key, value := range vars {
		if !paletteKeys[key] {
			continue
		}
		if c, ok := parseColour(value); ok {
			variableBindings[key](&theme, c)
			touchedPalette = true
		}
	}
	if touchedPalette {
		hint := theme.Hint
		theme = theme.withWidgetTokens()
		theme.Hint.Background, theme.Hint.Foreground = hint.Background, hint.Foreground
		theme.Hint.MaxWidth = hint.MaxWidth
	}

	for key, value := range vars {
		if paletteKeys[key] {
			continue
		}
		if key == "hintMaxWidth" {
			if width, ok := parseCells(value); ok {
				theme.Hint.MaxWidth = width
			}
			continue
		}
		bind, ok := variableBindings[key]
		if !ok {
			continue
		}
		if c, ok := parseColour(value); ok {
			bind(&theme, c)
		}
	}
	return theme.Normalize()
}

func parseColour(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if !colourValue.MatchString(value) {
		return "", false
	}
	return value, true
}

// parseCells reads "200", "200px" or "200ch" as a cell count.
func parseCells(value string) (int, bool) {
	value = strings.TrimSpace(value)
	for _, unit := range []string{"px", "ch"} {
		value = strings.TrimSuffix(value, unit)
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func registerToggleVariants(registry *VariantRegistry) {
	registry.Register(ToggleVariantDefault, NewCompositeStrategy(OutlineColour(func(t Theme) lipgloss.TerminalColor { return t.Palette.Neutral.Muted })))
	registry.Register(ToggleVariantFocused, NewCompositeStrategy(OutlineColour(func(t Theme) lipgloss.TerminalColor { return t.Toggle.FocusOutline })))
	registry.Register(ToggleVariantWarning, NewCompositeStrategy(OutlineColour(func(t Theme) lipgloss.TerminalColor { return t.Toggle.WarningOutline })))
	registry.Register(ToggleVariantError, NewCompositeStrategy(OutlineColour(func(t Theme) lipgloss.TerminalColor { return t.Toggle.ErrorOutline })))
	registry.Register(ToggleVariantDisabled, NewCompositeStrategy(
		OutlineColour(func(t Theme) lipgloss.TerminalColor { return t.Toggle.Disabled }),
		Typography(TypographyVariantMuted),
	))
}

func registerSpinnerVariants(registry *VariantRegistry) {
	registry.Register(SpinnerTypeMini, NewCompositeStrategy(PaddingX(SpacingSizeNone)))
	registry.Register(SpinnerTypeNormal, NewCompositeStrategy(PaddingX(SpacingSizeExtraSmall)))
	registry.Register(SpinnerTypeBig, NewCompositeStrategy(
		PaddingX(SpacingSizeSmall),
		PaddingY(SpacingSizeExtraSmall),
		Typography(TypographyVariantEmphasis),
	))
}

func registerItemVariants(registry *VariantRegistry) {
	registry.Register(ItemStateNormal, NewCompositeStrategy(PaddingX(SpacingSizeExtraSmall)))
	registry.Register(ItemStateActive, NewCompositeStrategy(
		PaddingX(SpacingSizeExtraSmall),
		func(base lipgloss.Style, t Theme) lipgloss.Style { return base.Background(t.TopBar.ActiveBackground) },
	))
	registry.Register(ItemStateStatic, NewCompositeStrategy(
		PaddingX(SpacingSizeExtraSmall),
		Typography(TypographyVariantMuted),
	))
}

func registerBadgeVariants(registry *VariantRegistry) {
	slots := map[BadgeVariant]PaletteSlot{
		BadgeVariantDefault: PaletteNeutral,
		BadgeVariantPrimary: PalettePrimary,
		BadgeVariantSuccess: PaletteSuccess,
		BadgeVariantWarning: PaletteWarning,
		BadgeVariantDanger:  PaletteDanger,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			PaddingX(SpacingSizeExtraSmall),
			Background(slot),
			Typography(TypographyVariantEmphasis),
		))
	}
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Caption:  base.Foreground(p.Neutral.Base),
		Emphasis: base.Bold(true),
		Muted:    base.Foreground(p.Neutral.Base).Faint(true),
	}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(theme.Spacing) {
		index = int(SpacingSizeMedium)
	}
	return theme.Spacing[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantCaption:
		return typo.Caption
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantMuted:
		return typo.Muted
	default:
		return typo.Base
	}
}

// Background applies a semantic background colour and matching foreground.
//
// Example:
//
//	text := NewText("Saved").WithAppliers(Background(PaletteSuccess))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// OutlineColour sets the border colour from a theme token.
func OutlineColour(token func(Theme) lipgloss.TerminalColor) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(token(theme))
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

// Typography applies typography styling.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
