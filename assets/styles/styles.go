// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package styles exposes the site's stylesheet.

The homepage components use a CSS module: every class selector in
styles.module.css is rewritten to a scoped name of the form
<name>_<hash>, where <hash> is derived from the module's content.
Components look the scoped names up with [Class]. The global
stylesheet holds the unscoped layout utilities (container, row, col--4 and
friends) that the markup references directly.
*/
package styles

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"slices"
	"strings"
	"sync"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

//go:embed styles.module.css
var moduleCSS string

//go:embed global.css
var globalCSS string

// hashLength is the number of hex characters kept from the module hash.
const hashLength = 8

// Module is a parsed CSS module.
type Module struct {
	classes map[string]string
	css     string
}

var (
	defaultModule     *Module
	defaultModuleOnce sync.Once
)

// Default returns the module built from the embedded styles.module.css.
func Default() *Module {
	defaultModuleOnce.Do(func() {
		defaultModule = Parse(moduleCSS)
	})

	return defaultModule
}

// Class returns the scoped class name for name in the default module.
func Class(name string) string {
	return Default().Class(name)
}

// Names returns the logical class names of the default module, sorted.
func Names() []string {
	return Default().Names()
}

// Stylesheet returns the global stylesheet followed by the scoped module.
func Stylesheet() string {
	return globalCSS + "\n" + Default().CSS()
}

// groupingAtRules hold nested rules rather than declarations.
var groupingAtRules = map[string]bool{
	"media":     true,
	"supports":  true,
	"container": true,
	"layer":     true,
	"scope":     true,
	"document":  true,
}

// Parse scopes every class selector in src.
//
// Only selectors are rewritten: comments, strings, declaration blocks and
// at-rule preludes are copied unchanged.
func Parse(src string) *Module {
	sum := sha256.Sum256([]byte(src))
	suffix := "_" + hex.EncodeToString(sum[:])[:hashLength]

	m := &Module{classes: make(map[string]string)}

	var (
		out strings.Builder
		// inDecl reports, per open brace, whether it opened a declaration block.
		stack []bool
		// atRule is the at-keyword of the current prelude, without the "@".
		atRule       string
		preludeStart = true
		// afterDot is set when the previous selector token was a "." delimiter.
		afterDot bool
	)

	l := css.NewLexer(parse.NewInputString(src))

	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			break
		}

		if len(stack) > 0 && stack[len(stack)-1] {
			out.Write(data)

			switch tt {
			case css.LeftBraceToken:
				stack = append(stack, true)
			case css.RightBraceToken:
				stack = stack[:len(stack)-1]
			}

			continue
		}

		if afterDot {
			afterDot = false

			if tt == css.IdentToken {
				name := string(data)
				m.classes[name] = name + suffix

				out.WriteString(name + suffix)

				continue
			}
		}

		switch tt {
		case css.WhitespaceToken, css.CommentToken:
			out.Write(data)

			continue
		case css.AtKeywordToken:
			if preludeStart {
				atRule = strings.ToLower(string(data[1:]))
			}
		case css.DelimToken:
			if atRule == "" && len(data) == 1 && data[0] == '.' {
				afterDot = true
			}
		case css.LeftBraceToken:
			stack = append(stack, !groupingAtRules[atRule])
			out.Write(data)

			atRule, preludeStart = "", true

			continue
		case css.RightBraceToken, css.SemicolonToken:
			if tt == css.RightBraceToken && len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

			out.Write(data)

			atRule, preludeStart = "", true

			continue
		}

		preludeStart = false

		out.Write(data)
	}

	m.css = out.String()

	return m
}

// Class returns the scoped class name for name.
// Unknown names are returned unchanged.
func (m *Module) Class(name string) string {
	if scoped, ok := m.classes[name]; ok {
		return scoped
	}

	return name
}

// Names returns the logical class names, sorted.
func (m *Module) Names() []string {
	names := make([]string, 0, len(m.classes))
	for name := range m.classes {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// CSS returns the rewritten stylesheet.
func (m *Module) CSS() string {
	return m.css
}
