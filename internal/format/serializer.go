package format

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/streak/internal/constants"
	"github.com/julianstephens/streak/internal/models"
)

// Serialize renders metadata and entries back into streak file text.
// Entries are emitted in the order given; callers wanting append-only file
// order pass them unsorted. Serialize is a left-inverse of Parse: parsing
// the output yields the same metadata and entries.
func Serialize(meta models.Metadata, entries []models.Entry) (string, error) {
	var b strings.Builder

	if meta.Explicit() {
		block, err := yaml.Marshal(meta)
		if err != nil {
			return "", err
		}
		b.WriteString(constants.FrontMatterDelimiter)
		b.WriteByte('\n')
		b.Write(block)
		b.WriteString(constants.FrontMatterDelimiter)
		b.WriteByte('\n')
	}

	for _, e := range entries {
		b.WriteString(EntryLine(e))
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// EntryLine renders a single entry as one file line, without the trailing
// newline. Used by Serialize and by the store's append path.
func EntryLine(e models.Entry) string {
	var b strings.Builder
	b.WriteString(e.DateString())
	if e.Quantity != nil {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(*e.Quantity, 'f', -1, 64))
	}
	if e.Comment != "" {
		b.WriteByte(' ')
		if needsCommentMarker(e) {
			b.WriteString("# ")
		}
		b.WriteString(e.Comment)
	}
	return b.String()
}

// needsCommentMarker reports whether the comment must be prefixed with "# "
// to survive a reparse: without the marker a leading numeric token would be
// read back as the quantity, and a leading "#" would be stripped as the
// marker itself.
func needsCommentMarker(e models.Entry) bool {
	if strings.HasPrefix(e.Comment, "#") {
		return true
	}
	if e.Quantity != nil {
		return false
	}
	first := e.Comment
	if i := strings.IndexAny(first, " \t"); i >= 0 {
		first = first[:i]
	}
	_, err := strconv.ParseFloat(first, 64)
	return err == nil
}
