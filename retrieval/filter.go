package retrieval

import (
	"context"
	"sort"
	"strings"
	"unicode"
)

// DefaultMinScore is the relevance threshold used when a filter is
// constructed with a zero MinScore via [NewTermOverlapFilter].
const DefaultMinScore = 0.1

// TermOverlapFilter scores candidates by the fraction of distinct query terms
// that appear in the document content. It is a cheap lexical stand-in for a
// model-based relevance checker: documents scoring below MinScore are
// dropped, survivors are ordered by descending score with the incoming order
// preserved on ties.
type TermOverlapFilter struct {
	// MinScore drops candidates scoring strictly below it. The zero value
	// keeps every candidate.
	MinScore float64
}

// NewTermOverlapFilter returns a filter with MinScore defaulted to
// [DefaultMinScore] when zero.
func NewTermOverlapFilter(minScore float64) TermOverlapFilter {
	if minScore == 0 {
		minScore = DefaultMinScore
	}
	return TermOverlapFilter{MinScore: minScore}
}

// FilterDocuments implements [RelevanceFilter].
func (f TermOverlapFilter) FilterDocuments(ctx context.Context, query string, docs []Document) ([]ScoredDocument, error) {
	terms := termSet(query)
	if len(terms) == 0 {
		return nil, ErrEmptyQuery
	}

	scored := make([]ScoredDocument, 0, len(docs))
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		score := overlap(terms, termSet(doc.Content))
		if score < f.MinScore {
			continue
		}
		scored = append(scored, ScoredDocument{Document: doc, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}

// overlap returns the fraction of query terms present in the document terms.
func overlap(query, doc map[string]struct{}) float64 {
	matched := 0
	for term := range query {
		if _, ok := doc[term]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(query))
}

// termSet lowercases text and splits it on non-alphanumeric runes.
func termSet(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}
	return set
}
