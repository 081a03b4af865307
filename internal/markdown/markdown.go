// Package markdown parses the small markdown subset notes are written in.
// Every input line yields exactly one node.
package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies a node type.
type Kind int

const (
	Paragraph Kind = iota
	Blank
	Heading1
	Heading2
	Bullet
	TermBullet
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Heading1:
		return "h1"
	case Heading2:
		return "h2"
	case Bullet:
		return "bullet"
	case TermBullet:
		return "term-bullet"
	default:
		return "paragraph"
	}
}

// Node is one rendered line.
type Node struct {
	Kind Kind
	Line int
	// Text is the line content after its marker. For TermBullet it is the
	// text that follows the bold term.
	Text string
	// Term is the bold lead of a TermBullet.
	Term string
	// Colon is set when the term was followed by a colon separator.
	Colon bool
	// ID is the anchor id of a Heading2.
	ID string
}

// Heading is a table-of-contents entry.
type Heading struct {
	Title string
	ID    string
	Line  int
}

// Document is the parsed form of a note body.
type Document struct {
	Nodes    []Node
	Headings []Heading
}

var (
	termColon = regexp.MustCompile(`^- \*\*(.+?)\*\*:\s*(.+)$`)
	termLoose = regexp.MustCompile(`^- \*\*(.+?)\*\*(.*)$`)
)

// Parse converts text into a Document. Second-level headings receive unique
// ids: the first occurrence of a slug is used as is, later ones get -2, -3...
func Parse(text string) Document {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	doc := Document{Nodes: make([]Node, 0, len(lines))}
	seen := make(map[string]int)

	for i, line := range lines {
		n := Node{Line: i}
		switch {
		case strings.HasPrefix(line, "# "):
			n.Kind = Heading1
			n.Text = line[2:]
		case strings.HasPrefix(line, "## "):
			n.Kind = Heading2
			n.Text = strings.TrimSpace(line[3:])
			n.ID = uniqueID(seen, n.Text, i)
			doc.Headings = append(doc.Headings, Heading{Title: n.Text, ID: n.ID, Line: i})
		case strings.HasPrefix(line, "- **"):
			if m := termColon.FindStringSubmatch(line); m != nil {
				n.Kind, n.Term, n.Text, n.Colon = TermBullet, m[1], m[2], true
			} else if m := termLoose.FindStringSubmatch(line); m != nil {
				n.Kind, n.Term, n.Text = TermBullet, m[1], m[2]
			} else {
				n.Kind = Bullet
				n.Text = line[2:]
			}
		case strings.HasPrefix(line, "- "):
			n.Kind = Bullet
			n.Text = line[2:]
		case strings.TrimSpace(line) == "":
			n.Kind = Blank
		default:
			n.Kind = Paragraph
			n.Text = line
		}
		doc.Nodes = append(doc.Nodes, n)
	}
	return doc
}

func uniqueID(seen map[string]int, title string, line int) string {
	base := Slugify(title)
	if base == "" {
		base = fmt.Sprintf("section-%d", line)
	}
	seen[base]++
	if n := seen[base]; n > 1 {
		return fmt.Sprintf("%s-%d", base, n)
	}
	return base
}

// Plain renders doc as terminal text with the table of contents first.
func Plain(doc Document) string {
	var b strings.Builder
	if len(doc.Headings) > 0 {
		for _, h := range doc.Headings {
			fmt.Fprintf(&b, "  #%s  %s\n", h.ID, h.Title)
		}
		b.WriteString("\n")
	}
	for _, n := range doc.Nodes {
		switch n.Kind {
		case Heading1:
			fmt.Fprintf(&b, "%s\n%s\n", strings.ToUpper(n.Text), strings.Repeat("=", len([]rune(n.Text))))
		case Heading2:
			fmt.Fprintf(&b, "\n%s\n%s\n", n.Text, strings.Repeat("-", len([]rune(n.Text))))
		case TermBullet:
			sep := ""
			if n.Colon {
				sep = ": "
			}
			fmt.Fprintf(&b, "  • %s%s%s\n", n.Term, sep, n.Text)
		case Bullet:
			fmt.Fprintf(&b, "  • %s\n", n.Text)
		case Blank:
			b.WriteString("\n")
		default:
			b.WriteString(n.Text + "\n")
		}
	}
	return b.String()
}
