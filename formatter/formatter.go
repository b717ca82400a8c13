// Package formatter renders query results and selector errors for the
// terminal.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/seliq/seliq/selector"
)

var (
	errorStyle    = color.New(color.FgRed, color.Bold)
	selectorStyle = color.New(color.FgYellow, color.Bold)
	fileStyle     = color.New(color.FgCyan, color.Bold)
	countStyle    = color.New(color.FgBlue, color.Bold)
	matchStyle    = color.New(color.FgGreen)
)

// FormatMatches renders the nodes matched in one document, one outline
// path per line.
func FormatMatches(file, sel string, nodes []selector.Node) string {
	var b strings.Builder
	b.WriteString(fileStyle.Sprint(file))
	b.WriteString(" ")
	b.WriteString(selectorStyle.Sprint(sel))
	b.WriteString(countStyle.Sprintf(" (%d match%s)\n", len(nodes), plural(len(nodes))))
	for _, n := range nodes {
		b.WriteString("  ")
		b.WriteString(matchStyle.Sprint(Outline(n)))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatError renders a lexical or grammar error for one selector.
func FormatError(sel string, err error) string {
	return errorStyle.Sprint("error: ") + selectorStyle.Sprint(sel) + ": " + err.Error() + "\n"
}

// FormatParsed renders the parsed structure of a selector list, one
// complex selector per line.
func FormatParsed(sel string, list *selector.SelectorList) string {
	var b strings.Builder
	b.WriteString(selectorStyle.Sprint(sel))
	b.WriteString(countStyle.Sprintf(" (%d alternative%s)\n", len(list.Selectors), pluralS(len(list.Selectors))))
	for i := range list.Selectors {
		b.WriteString(fmt.Sprintf("  %d: %s\n", i+1, list.Selectors[i].String()))
	}
	return b.String()
}

// Outline describes a node's position as a chain of tag#id.class steps
// from the root, e.g. `html > body > div#root.container`.
func Outline(n selector.Node) string {
	var steps []string
	for cur := n; cur != nil; cur = cur.Parent() {
		steps = append(steps, describe(cur))
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return strings.Join(steps, " > ")
}

func describe(n selector.Node) string {
	var b strings.Builder
	tag := n.TagName()
	if tag == "" {
		tag = "*"
	}
	b.WriteString(tag)
	if id := n.ID(); id != "" {
		b.WriteString("#")
		b.WriteString(id)
	}
	if class, ok := n.Attribute("class"); ok {
		for _, f := range strings.Fields(class) {
			b.WriteString(".")
			b.WriteString(f)
		}
	}
	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "es"
}

func pluralS(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
