// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package template

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	errNotSVG        = errors.New("root element is not <svg>")
	errMultipleRoots = errors.New("more than one root element")
	errEmptyIcon     = errors.New("no root element")
)

var (
	// iconCache holds all of our SVGs keyed by filename (without the “.svg” suffix).
	iconCache = make(map[string]string)
	iconLock  sync.RWMutex
)

// LoadIcons scans dir in fsys for “.svg” files, validates each one and
// stores it in the icon cache, replacing whatever was loaded before.
//
// An unreadable file or a file whose root element is not <svg> fails the
// whole load.
func LoadIcons(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("reading icons directory %q: %w", dir, err)
	}

	loaded := make(map[string]string, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".svg") {
			continue
		}

		// The embedded filesystem requires forward slashes on all operating systems.
		fullPath := path.Join(dir, name)

		content, err := fs.ReadFile(fsys, fullPath)
		if err != nil {
			return fmt.Errorf("reading icon %q: %w", fullPath, err)
		}

		if err := validateSVG(content); err != nil {
			return fmt.Errorf("invalid icon %q: %w", fullPath, err)
		}

		loaded[strings.TrimSuffix(name, ".svg")] = strings.TrimSpace(string(content))
	}

	iconLock.Lock()
	iconCache = loaded
	iconLock.Unlock()

	return nil
}

// validateSVG checks that content holds exactly one root element, <svg>.
// Comments, doctypes and whitespace around it are ignored.
func validateSVG(content []byte) error {
	nodes, err := html.ParseFragment(bytes.NewReader(content), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return err
	}

	var root *html.Node

	for _, n := range nodes {
		switch n.Type {
		case html.ElementNode:
			if root != nil {
				return errMultipleRoots
			}

			root = n
		case html.TextNode:
			if strings.TrimSpace(n.Data) != "" {
				return errNotSVG
			}
		default:
		}
	}

	switch {
	case root == nil:
		return errEmptyIcon
	case root.DataAtom != atom.Svg:
		return fmt.Errorf("%w: got <%s>", errNotSVG, root.Data)
	}

	return nil
}

// HasIcon reports whether an icon called iconName has been loaded.
func HasIcon(iconName string) bool {
	iconLock.RLock()
	defer iconLock.RUnlock()

	_, ok := iconCache[iconName]

	return ok
}

// IconNames returns the names of the loaded icons, sorted.
func IconNames() []string {
	iconLock.RLock()
	defer iconLock.RUnlock()

	names := make([]string, 0, len(iconCache))
	for name := range iconCache {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// RenderIcon returns an SVG (as HTML), optionally injecting a CSS class and
// extra attributes into the <svg> tag.
//
// attrs are alternating name, value pairs; values are escaped, names must be
// developer-controlled. iconCache only ever contains validated SVG blobs,
// so returning HTML is safe.
//
// If iconName is not found, a simple text placeholder is returned.
func RenderIcon(iconName, class string, attrs ...string) string {
	iconLock.RLock()
	raw, ok := iconCache[iconName]
	iconLock.RUnlock()

	if !ok {
		return "[missing icon: " + templ.EscapeString(iconName) + "]"
	}

	if len(attrs)%2 != 0 {
		panic("template: odd number of attribute arguments, want name, value pairs")
	}

	var injected strings.Builder

	if class != "" {
		injected.WriteString(` class="` + templ.EscapeString(class) + `"`)
	}

	for i := 0; i < len(attrs); i += 2 {
		injected.WriteString(" " + attrs[i] + `="` + templ.EscapeString(attrs[i+1]) + `"`)
	}

	if injected.Len() == 0 {
		return raw
	}

	return strings.Replace(raw, "<svg", "<svg"+injected.String(), 1)
}
