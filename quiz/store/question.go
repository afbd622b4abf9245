// Package store persists the question bank in the shared Redis store.
//
// Layout is fixed for compatibility with existing data: every question is
// a hash at "question:{prefix}_{n}" with fields question, answer and an
// optional comment, plus any extra fields carried by the loaded source.
package store

const (
	keyNamespace = "question:"
	scanPattern  = "question:*"
	scanCount    = 100

	fieldQuestion = "question"
	fieldAnswer   = "answer"
	fieldComment  = "comment"
)

// Question is a single quiz question as stored in the bank.
// Key is the full record key ("question:id_1") and doubles as the stable
// identifier referenced by session state.
type Question struct {
	Key      string
	Question string
	Answer   string
	Comment  string
	// Extra keeps source fields outside the recognized set.
	Extra map[string]string
}

func questionFromFields(key string, fields map[string]string) Question {
	q := Question{Key: key}
	for name, value := range fields {
		switch name {
		case fieldQuestion:
			q.Question = value
		case fieldAnswer:
			q.Answer = value
		case fieldComment:
			q.Comment = value
		default:
			if q.Extra == nil {
				q.Extra = make(map[string]string)
			}
			q.Extra[name] = value
		}
	}
	return q
}
