// Package deck turns pasted deck lists into card instances, resolving
// names against an external card database.
package deck

import (
	"regexp"
	"strconv"
	"strings"
)

// Entry is one deck-list line: a card name and how many copies.
type Entry struct {
	Count int
	Name  string
}

// List is a parsed deck list.
type List struct {
	Main      []Entry
	Sideboard []Entry
}

var countedLine = regexp.MustCompile(`^(\d+)\s*[xX]?\s+(.+)$`)

// metadata header lines common in deck-list exports; matched
// case-insensitively against the whole trimmed line.
var headerLines = map[string]bool{
	"deck":      true,
	"mainboard": true,
	"main":      true,
	"commander": true,
	"companion": true,
	"about":     true,
}

func isSideboardHeader(line string) bool {
	l := strings.ToLower(strings.TrimSuffix(line, ":"))
	return l == "sideboard" || l == "side"
}

func isMetadataLine(line string) bool {
	l := strings.ToLower(strings.TrimSuffix(line, ":"))
	if headerLines[l] {
		return true
	}
	return strings.HasPrefix(strings.ToLower(line), "name ")
}

// Parse reads a line-oriented deck list: one card per line as
// "[count[x]] <name>" with a default count of one. Blank lines and
// comment (// or #) lines are skipped; a blank line after at least one
// main-deck entry starts an implicit sideboard section unless a
// "Sideboard" header already made the split explicit.
func Parse(text string) List {
	var list List
	inSideboard := false
	explicit := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if line == "" {
			if !explicit && !inSideboard && len(list.Main) > 0 {
				inSideboard = true
			}
			continue
		}
		if strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}
		if isSideboardHeader(line) {
			inSideboard = true
			explicit = true
			continue
		}
		if isMetadataLine(line) {
			if explicit && !isSideboardHeader(line) {
				// "Deck"/"Mainboard" header after an explicit sideboard
				// header switches back.
				l := strings.ToLower(strings.TrimSuffix(line, ":"))
				if l == "deck" || l == "mainboard" || l == "main" {
					inSideboard = false
				}
			}
			continue
		}

		entry := Entry{Count: 1, Name: line}
		if m := countedLine.FindStringSubmatch(line); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil && n > 0 {
				entry = Entry{Count: n, Name: strings.TrimSpace(m[2])}
			}
		}

		if inSideboard {
			list.Sideboard = append(list.Sideboard, entry)
		} else {
			list.Main = append(list.Main, entry)
		}
	}

	return list
}
