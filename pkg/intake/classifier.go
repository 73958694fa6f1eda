// Package intake decides when a conversation is ready for an attorney
// search: the visitor must have named both a legal issue and a location.
//
// The check is a heuristic over the accumulated transcript text, not tracked
// dialogue state. Every evaluation re-reads the whole transcript from
// scratch, so a term mentioned three turns ago still counts. Literal words
// match on word boundaries: "statement" is not a mention of "state".
package intake

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/openai"
)

// Verdict holds the two independent pattern-test results for a transcript.
type Verdict struct {
	// LegalIssue reports that a practice-area term was mentioned.
	LegalIssue bool

	// Location reports that a place-indicating token was mentioned.
	Location bool
}

// Ready reports whether both tests passed, meaning the conversation carries
// enough information to search for attorneys.
func (v Verdict) Ready() bool {
	return v.LegalIssue && v.Location
}

// Classifier runs the readiness check over a transcript. Compile one at
// startup and share it freely; evaluation is read-only.
type Classifier struct {
	legalTerms    *regexp.Regexp
	locationWords *regexp.Regexp
	afterIn       *regexp.Regexp
	cityState     *regexp.Regexp
}

// NewClassifier compiles the vocabulary into a Classifier.
func NewClassifier(vocab Vocabulary) (*Classifier, error) {
	legalTerms, err := compileWordList(vocab.LegalTerms)
	if err != nil {
		return nil, fmt.Errorf("failed to compile legal terms: %w", err)
	}

	locationWords, err := compileWordList(vocab.LocationWords)
	if err != nil {
		return nil, fmt.Errorf("failed to compile location words: %w", err)
	}

	return &Classifier{
		legalTerms:    legalTerms,
		locationWords: locationWords,
		// "in austin texas", "in new york"
		afterIn: regexp.MustCompile(`\bin\s+[a-z]+\s+[a-z]+\b`),
		// "austin, tx" (a lower-cased "City, ST")
		cityState: regexp.MustCompile(`\b[a-z]+,\s*[a-z]{2}\b`),
	}, nil
}

// Evaluate runs both tests against the full transcript, regardless of which
// turn or speaker each token appears in.
func (c *Classifier) Evaluate(turns []openai.Message) Verdict {
	var b strings.Builder
	for _, turn := range turns {
		b.WriteString(turn.Content)
		// keep words from fusing across turn boundaries
		b.WriteByte(' ')
	}
	text := strings.ToLower(b.String())

	return Verdict{
		LegalIssue: c.legalTerms.MatchString(text),
		Location: c.locationWords.MatchString(text) ||
			c.afterIn.MatchString(text) ||
			c.cityState.MatchString(text),
	}
}

// compileWordList builds a whole-word alternation from literal terms.
func compileWordList(terms []string) (*regexp.Regexp, error) {
	quoted := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(term))
	}
	if len(quoted) == 0 {
		return nil, fmt.Errorf("no terms to match")
	}
	return regexp.Compile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
