// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"time"
)

// writePOT writes refs as a gettext template, sorted by context, msgid and
// plural, each entry listing its deduplicated source references.
func writePOT(w io.Writer, refs refSet, version string, now time.Time) {
	writeHeader(w, version, now)

	keys := make([]key, 0, len(refs))
	for k := range refs {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, func(a, b key) int {
		return cmp.Or(cmp.Compare(a.ctx, b.ctx), cmp.Compare(a.id, b.id), cmp.Compare(a.plural, b.plural))
	})

	for i, k := range keys {
		rs := slices.Clone(refs[k])
		slices.SortFunc(rs, func(a, b ref) int {
			return cmp.Or(cmp.Compare(a.file, b.file), cmp.Compare(a.line, b.line))
		})

		fmt.Fprint(w, "#:")

		for _, r := range slices.Compact(rs) {
			fmt.Fprintf(w, " %s:%d", r.file, r.line)
		}

		fmt.Fprintln(w)

		if k.ctx != "" {
			fmt.Fprintf(w, "msgctxt %q\n", k.ctx)
		}

		fmt.Fprintf(w, "msgid %q\n", k.id)

		if k.plural != "" {
			fmt.Fprintf(w, "msgid_plural %q\n", k.plural)
			fmt.Fprintln(w, `msgstr[0] ""`)
			fmt.Fprintln(w, `msgstr[1] ""`)
		} else {
			fmt.Fprintln(w, `msgstr ""`)
		}

		if i < len(keys)-1 {
			fmt.Fprintln(w)
		}
	}
}

func writeHeader(w io.Writer, version string, now time.Time) {
	fmt.Fprintln(w, `msgid ""`)
	fmt.Fprintln(w, `msgstr ""`)
	fmt.Fprintf(w, "\"Project-Id-Version: Embedded Rust 101 %s\\n\"\n", version)
	fmt.Fprintf(w, "\"POT-Creation-Date: %s\\n\"\n", now.UTC().Format("2006-01-02 15:04+0000"))
	fmt.Fprintln(w, `"Language: en\n"`)
	fmt.Fprintln(w, `"Report-Msgid-Bugs-To: https://codeberg.org/embedded-rust-101/site/issues\n"`)
	fmt.Fprintln(w, `"MIME-Version: 1.0\n"`)
	fmt.Fprintln(w, `"Content-Type: text/plain; charset=UTF-8\n"`)
	fmt.Fprintln(w, `"Content-Transfer-Encoding: 8bit\n"`)
	fmt.Fprintln(w, `"Plural-Forms: nplurals=2; plural=(n != 1);\n"`)
	fmt.Fprintln(w)
}
