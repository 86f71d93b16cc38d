package components

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// LangCode identifies a locale table.
type LangCode string

const (
	LangRU LangCode = "ru_RU"
	LangEN LangCode = "en_GB"

	DefaultLangCode = LangRU
)

// Components that read locale tables.
const (
	LocaleSpinner = "Spinner"
	LocaleTopBar  = "TopBar"
)

// Locale keys.
const (
	KeyLoading             = "loading"
	KeyCabinetSettings     = "cabinetSettings"
	KeyCabinetCertificates = "cabinetCertificates"
	KeyCabinetServices     = "cabinetServices"
	KeyLogout              = "logout"
)

var localeTables = map[LangCode]map[string]map[string]string{
	LangRU: {
		LocaleSpinner: {KeyLoading: "Загрузка"},
		LocaleTopBar: {
			KeyCabinetSettings:     "Настройки",
			KeyCabinetCertificates: "Сертификаты",
			KeyCabinetServices:     "Оплата сервисов",
			KeyLogout:              "Выйти",
		},
	},
	LangEN: {
		LocaleSpinner: {KeyLoading: "Loading"},
		LocaleTopBar: {
			KeyCabinetSettings:     "Profile settings",
			KeyCabinetCertificates: "Certificates",
			KeyCabinetServices:     "Services payment",
			KeyLogout:              "Logout",
		},
	},
}

var supportedLanguages = map[string]LangCode{
	"ru": LangRU,
	"en": LangEN,
}

// ParseLangCode resolves a language tag such as "en", "en-GB" or "ru_RU".
func ParseLangCode(s string) (LangCode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLangCode, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parse language %q: %w", s, err)
	}
	base, _ := tag.Base()
	code, ok := supportedLanguages[base.String()]
	if !ok {
		return "", fmt.Errorf("unsupported language %q", s)
	}
	return code, nil
}

// LangCodes lists every language with a locale table.
func LangCodes() []LangCode {
	return []LangCode{LangEN, LangRU}
}

// LocaleContext selects a language and optional per-component overrides.
type LocaleContext struct {
	LangCode  LangCode
	Overrides map[string]map[string]string
}

// Get returns the strings for component. An unset or unknown language falls
// back to the default table; overrides are overlaid key by key.
func (l LocaleContext) Get(component string) map[string]string {
	table, ok := localeTables[l.LangCode]
	if !ok {
		table = localeTables[DefaultLangCode]
	}

	defaults := localeTables[DefaultLangCode][component]
	out := make(map[string]string, len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range table[component] {
		out[k] = v
	}
	for k, v := range l.Overrides[component] {
		out[k] = v
	}
	return out
}

// Text returns a single string, or the key itself when no table has it.
func (l LocaleContext) Text(component, key string) string {
	if v, ok := l.Get(component)[key]; ok {
		return v
	}
	return key
}
