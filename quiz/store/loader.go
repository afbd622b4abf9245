package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
)

// Entry is a single question from a bulk-load source, keyed by its
// arbitrary source label. Question and Answer are mandatory.
type Entry struct {
	Label    string
	Question string `validate:"required"`
	Answer   string `validate:"required"`
	Comment  string
	// Extra keeps source fields outside the recognized set; they are
	// persisted alongside the question record.
	Extra map[string]string
}

func (e Entry) fields() map[string]string {
	out := make(map[string]string, 3+len(e.Extra))
	out[fieldQuestion] = e.Question
	out[fieldAnswer] = e.Answer
	if e.Comment != "" {
		out[fieldComment] = e.Comment
	}
	for name, value := range e.Extra {
		out[name] = value
	}
	return out
}

var validate = validator.New()

// ReadQuestionsFile parses a bulk-load JSON document mapping labels to
// question objects. Entry order follows the document, which matters because
// loading assigns sequential identifiers. A missing file or an unparsable
// document is a hard error; this is the one path allowed to fail loudly.
func ReadQuestionsFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open questions file: %w", err)
	}
	defer f.Close()

	// encoding/json maps do not preserve key order, so walk the token
	// stream instead: document order defines the load order.
	dec := json.NewDecoder(f)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse questions file %s: %w", path, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parse questions file %s: top-level value must be an object", path)
	}

	var entries []Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse questions file %s: %w", path, err)
		}
		label, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("parse questions file %s: unexpected token %v", path, tok)
		}

		var fields map[string]string
		if err := dec.Decode(&fields); err != nil {
			return nil, fmt.Errorf("parse questions file %s: entry %q: %w", path, label, err)
		}

		entry := Entry{Label: label}
		for name, value := range fields {
			switch name {
			case fieldQuestion:
				entry.Question = value
			case fieldAnswer:
				entry.Answer = value
			case fieldComment:
				entry.Comment = value
			default:
				if entry.Extra == nil {
					entry.Extra = make(map[string]string)
				}
				entry.Extra[name] = value
			}
		}
		if err := validate.Struct(entry); err != nil {
			return nil, fmt.Errorf("invalid entry %q in %s: %w", label, path, err)
		}
		entries = append(entries, entry)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parse questions file %s: %w", path, err)
	}
	// The document must be a single object; content after the closing
	// brace is a malformed file, not an extra entry to ignore.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("parse questions file %s: trailing data after top-level object", path)
	}
	return entries, nil
}
