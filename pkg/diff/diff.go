// Package diff compares the values two themes resolve to.
package diff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/alexisbeaulieu97/themer/pkg/theme"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Entry is one leaf key visible from a theme and the value it resolves to.
type Entry struct {
	Key   string
	Value any
}

func (e Entry) String() string {
	return fmt.Sprintf("%s = %v", e.Key, e.Value)
}

// Flatten lists every leaf key of t and its ancestors, ordered by key, with
// the value a lookup on t returns for it.
func Flatten(t *theme.Theme) []Entry {
	keys := map[string]struct{}{}
	for cur := t; cur != nil; cur = cur.Parent() {
		collectKeys("", cur.Document(), keys)
	}

	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	entries := make([]Entry, 0, len(sorted))
	for _, k := range sorted {
		value := t.Value(k)
		if _, isMap := value.(map[string]any); isMap || value == nil {
			continue
		}
		entries = append(entries, Entry{Key: k, Value: value})
	}
	return entries
}

func collectKeys(prefix string, m map[string]any, into map[string]struct{}) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			collectKeys(key, nested, into)
			continue
		}
		into[key] = struct{}{}
	}
}

// Themes returns a unified diff of the flattened values of from and to, or
// an empty string when they resolve identically.
func Themes(from, to *theme.Theme) string {
	return Unified(render(Flatten(from)), render(Flatten(to)), from.Name(), to.Name())
}

func render(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Unified produces a line-oriented unified diff of from and to. Diffs longer
// than maxDiffLines are truncated with a marker.
func Unified(from, to, fromLabel, toLabel string) string {
	if from == to {
		return ""
	}

	dmp := diffmatchpatch.New()
	fromChars, toChars, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(fromChars, toChars, false), lines)

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n", fromLabel)
	fmt.Fprintf(&b, "+++ %s\n", toLabel)
	fmt.Fprintf(&b, "@@ -1,%d +1,%d @@\n", countLines(from), countLines(to))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			b.WriteString(prefix)
			b.WriteString(strings.TrimSuffix(line, "\n"))
			b.WriteByte('\n')
		}
	}

	result := b.String()
	lines = strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

func countLines(s string) int {
	return strings.Count(s, "\n")
}
