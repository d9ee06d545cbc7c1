// Package locale provides the two supported UI languages, their text
// direction and the localized strings the page shows.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported UI language.
type Lang string

const (
	English Lang = "en"
	Arabic  Lang = "ar"
)

// Default is used when no language preference is stored.
const Default = English

// Direction is the text direction attribute of a language.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

var rtlScripts = map[string]bool{
	"Arab": true,
	"Hebr": true,
	"Syrc": true,
	"Thaa": true,
	"Nkoo": true,
	"Adlm": true,
}

// Parse accepts a BCP 47 tag whose base language is supported, so "ar-EG"
// parses as Arabic.
func Parse(s string) (Lang, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("empty language")
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parse language %q: %w", s, err)
	}
	base, _ := tag.Base()
	switch l := Lang(base.String()); l {
	case English, Arabic:
		return l, nil
	default:
		return "", fmt.Errorf("unsupported language %q (want en or ar)", s)
	}
}

// Tag returns the x/text tag for l.
func (l Lang) Tag() language.Tag {
	return language.Make(string(l))
}

// Dir derives the text direction from the language's likely script.
func (l Lang) Dir() Direction {
	script, _ := l.Tag().Script()
	if rtlScripts[script.String()] {
		return RTL
	}
	return LTR
}

// Toggle returns the other supported language.
func (l Lang) Toggle() Lang {
	if l == Arabic {
		return English
	}
	return Arabic
}

// ToggleLabel is the text on the language switch: the language it switches to.
func (l Lang) ToggleLabel() string {
	return strings.ToUpper(string(l.Toggle()))
}

func (l Lang) String() string { return string(l) }
