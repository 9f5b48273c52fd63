// Package i18n holds the dashboard's two UI languages and the message
// catalog for the strings the backend itself emits.
package i18n

import (
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
)

// Language is a supported UI language.
type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// Default is used when no preference is stored.
const Default = English

var supported = []language.Tag{language.English, language.SimplifiedChinese}

var matcher = language.NewMatcher(supported)

// Tag returns the BCP-47 tag for l.
func (l Language) Tag() language.Tag {
	if l == Chinese {
		return language.SimplifiedChinese
	}
	return language.English
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == Chinese {
		return English
	}
	return Chinese
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == English || l == Chinese
}

// ParseLanguage maps a BCP-47 tag ("zh-CN", "en-US", "zh-Hans", "en") onto a
// supported language.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", eris.New("i18n: empty language tag")
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", eris.Wrapf(err, "i18n: parse language %q", s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", eris.Errorf("i18n: unsupported language %q (valid: en, zh)", s)
	}
	if supported[idx] == language.SimplifiedChinese {
		return Chinese, nil
	}
	return English, nil
}
