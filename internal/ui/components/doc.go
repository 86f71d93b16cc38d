// Package components provides theme-aware terminal widgets built on
// lipgloss and Bubble Tea.
//
// # Rendering
//
// Every widget implements View and ViewWithContext. The RenderContext
// carries the theme, the locale, the keyboard focus tracker and layout
// constraints; it is passed explicitly and never read from globals:
//
//	ctx := components.DefaultContext().
//		WithTheme(components.DarkTheme()).
//		WithLocale(components.LocaleContext{LangCode: components.LangEN})
//	out := toggle.ViewWithContext(ctx)
//
// View is shorthand for ViewWithContext(DefaultContext()).
//
// # Widgets
//
//   - Toggle: two-state switch, controlled or uncontrolled
//   - Hint: delayed popup text anchored to another widget
//   - Spinner: animated loading indicator with a localized caption
//   - TopBar: header with Item, ItemStatic, Divider, Logout, User and
//     Dropdown entries
//   - Icon: glyphs of the 20px icon set
//
// Text, Divider and Stack are the layout primitives the widgets compose.
//
// # Input
//
// Interactive widgets follow the Bubble Tea shape: Update(msg) returns the
// widget and a command. Timers are tea.Tick commands tagged per instance so
// a cancelled timer's tick is ignored. Mouse hit testing uses the Bounds a
// host records with SetBounds after layout.
//
// # Themes
//
// Themes are immutable values. DefaultTheme and DarkTheme are built in;
// ThemeFromVariables overlays the output of the variables command:
//
//	theme := components.ThemeFromVariables(components.DefaultTheme(), map[string]string{
//		"brand":           "#1e79be",
//		"toggleBgChecked": "#3f9726",
//	})
//
// Variant styling is data-driven through the theme's VariantRegistry and
// StyleFunc appliers such as Background(PalettePrimary) or
// Typography(TypographyVariantCaption).
package components
