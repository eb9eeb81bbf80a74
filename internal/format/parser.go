// Package format implements the streak.txt file format: an optional YAML
// front matter block followed by one tick entry per line.
package format

import (
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/streak/internal/constants"
	"github.com/julianstephens/streak/internal/errors"
	"github.com/julianstephens/streak/internal/logger"
	"github.com/julianstephens/streak/internal/models"
)

// dateLayouts are the accepted ISO-8601 shapes for the leading date token.
// Layouts carrying a time-of-day component come first so HasTime detection
// can key off the matched layout.
var dateLayouts = []struct {
	layout  string
	hasTime bool
}{
	{time.RFC3339, true},
	{"2006-01-02T15:04:05.999999999", true},
	{constants.DateTimeFormat, true},
	{"2006-01-02T15:04", true},
	{constants.DateFormat, false},
}

// Parse converts raw streak file text into metadata and entries in file
// order. name is the file-derived fallback when the front matter block is
// absent or carries no name. Parsing is all-or-nothing: the first malformed
// line aborts with a FormatError carrying its 1-based line number. The one
// exception is a final line without a trailing newline that fails to parse,
// which is treated as an interrupted append and discarded.
func Parse(name, raw string) (models.Metadata, []models.Entry, error) {
	meta := models.DefaultMetadata(name)

	lines := strings.Split(raw, "\n")
	terminated := strings.HasSuffix(raw, "\n")
	if terminated && len(lines) > 0 {
		lines = lines[:len(lines)-1]
	}

	start := 0
	if len(lines) > 0 && strings.TrimRight(lines[0], "\r") == constants.FrontMatterDelimiter {
		end := -1
		for i := 1; i < len(lines); i++ {
			if strings.TrimRight(lines[i], "\r") == constants.FrontMatterDelimiter {
				end = i
				break
			}
		}
		if end < 0 {
			return meta, nil, errors.NewFormatError(1, lines[0], "unclosed metadata block")
		}
		block := strings.Join(lines[1:end], "\n")
		parsed, err := parseFrontMatter(name, block)
		if err != nil {
			return meta, nil, err
		}
		meta = parsed
		start = end + 1
	}

	var entries []models.Entry
	seen := map[string]int{} // exact timestamp -> first line number
	for i := start; i < len(lines); i++ {
		lineNo := i + 1
		line := strings.TrimSpace(strings.TrimRight(lines[i], "\r"))
		if line == "" {
			continue
		}
		entry, err := parseEntryLine(lineNo, line)
		if err != nil {
			if i == len(lines)-1 && !terminated && errors.IsFormat(err) {
				logger.Warn("Discarding truncated trailing line", "line", lineNo, "content", line)
				continue
			}
			return meta, nil, err
		}
		key := entry.Date.Format(time.RFC3339Nano)
		if prev, ok := seen[key]; ok {
			return meta, nil, errors.NewDuplicateEntryError(lineNo, prev, entry.DateString())
		}
		seen[key] = lineNo
		entries = append(entries, entry)
	}

	return meta, entries, nil
}

// parseFrontMatter decodes the YAML block between the --- delimiters
func parseFrontMatter(name, block string) (models.Metadata, error) {
	var meta models.Metadata
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return meta, errors.NewFormatError(2, block, "invalid metadata block")
	}
	meta.HadExplicitBlock = true
	if meta.Name == "" {
		meta.Name = name
	}
	if meta.Tick == "" {
		meta.Tick = models.GranularityDaily
	} else {
		g, err := models.ParseGranularity(string(meta.Tick))
		if err != nil {
			return meta, errors.NewValidationError("tick", "unknown granularity %q", string(meta.Tick))
		}
		meta.Tick = g
	}
	if meta.Period != "" {
		g, err := models.ParseGranularity(string(meta.Period))
		if err != nil {
			return meta, errors.NewValidationError("period", "unknown granularity %q", string(meta.Period))
		}
		meta.Period = g
	}
	if err := meta.Validate(); err != nil {
		return meta, err
	}
	return meta, nil
}

// parseEntryLine splits one entry line into date, optional quantity and
// comment. Tokenization rule: the first whitespace-delimited token is the
// date; if the next token parses as a number it is the quantity; the trimmed
// remainder is the comment, minus one leading "# " marker when present. Any
// further "#" characters stay part of the comment text.
func parseEntryLine(lineNo int, line string) (models.Entry, error) {
	dateTok := line
	rest := ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		dateTok, rest = line[:i], strings.TrimSpace(line[i+1:])
	}

	var entry models.Entry
	parsed := false
	for _, dl := range dateLayouts {
		t, err := time.Parse(dl.layout, dateTok)
		if err == nil {
			entry.Date = t
			entry.HasTime = dl.hasTime
			parsed = true
			break
		}
	}
	if !parsed {
		return entry, errors.NewFormatError(lineNo, line, "expected ISO-8601 date")
	}

	if rest != "" && !strings.HasPrefix(rest, "#") {
		qTok := rest
		tail := ""
		if i := strings.IndexAny(rest, " \t"); i >= 0 {
			qTok, tail = rest[:i], strings.TrimSpace(rest[i+1:])
		}
		if q, err := strconv.ParseFloat(qTok, 64); err == nil {
			if q < 0 {
				return entry, errors.NewValidationError("quantity",
					"must not be negative, got %s on line %d", qTok, lineNo)
			}
			entry.Quantity = &q
			rest = tail
		}
	}

	entry.Comment = strings.TrimPrefix(rest, "# ")
	if entry.Comment == "#" {
		entry.Comment = ""
	}
	return entry, nil
}
