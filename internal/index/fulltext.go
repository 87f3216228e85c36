package index

import (
	"math"
	"sort"
	"strings"

	"github.com/hirakinii/osf-api-mcp/internal/model"
)

// Matched-field names, in the fixed order they are reported.
const (
	fieldSummary     = "summary"
	fieldDescription = "description"
)

// fulltextDocument is the indexed text unit for one operation.
type fulltextDocument struct {
	path        string
	method      model.Method
	content     string
	summary     string
	description string
}

// fulltextIndex is an inverted index from token to the set of documents
// containing it, plus the document store itself. A token key never maps to
// an empty set; the fulltext query relies on that to keep every document
// frequency strictly positive.
type fulltextIndex struct {
	words     map[string]map[string]struct{}
	documents map[string]*fulltextDocument
}

func newFulltextIndex() fulltextIndex {
	return fulltextIndex{
		words:     make(map[string]map[string]struct{}),
		documents: make(map[string]*fulltextDocument),
	}
}

// docID uniquely identifies an operation's fulltext document.
func docID(op *model.Operation) string {
	return string(op.Method) + " " + op.Path
}

// add renders the operation into one document and registers its tokens.
// Content order is fixed: summary, description, parameter descriptions,
// parameter names.
func (fi *fulltextIndex) add(op *model.Operation) {
	parts := make([]string, 0, 2+2*len(op.Parameters))
	parts = append(parts, op.Summary, op.Description)
	for _, p := range op.Parameters {
		parts = append(parts, p.Description)
	}
	for _, p := range op.Parameters {
		parts = append(parts, p.Name)
	}
	content := strings.Join(parts, " ")

	id := docID(op)
	fi.documents[id] = &fulltextDocument{
		path:        op.Path,
		method:      op.Method,
		content:     content,
		summary:     op.Summary,
		description: op.Description,
	}

	for _, token := range Tokenize(content) {
		set, ok := fi.words[token]
		if !ok {
			set = make(map[string]struct{})
			fi.words[token] = set
		}
		set[id] = struct{}{}
	}
}

// FulltextResult is one scored document hit. MatchedFields lists, in fixed
// order, which of summary and description textually contain a query token.
type FulltextResult struct {
	Path          string
	Method        model.Method
	Summary       string
	Description   string
	Score         float64
	MatchedFields []string
}

// SearchFulltext tokenizes the query with the shared tokenizer and scores
// documents TF-IDF style: each query token found in the index contributes
// (1/queryTokenCount) * ln(totalDocs/df) to every document containing it.
// Tokens absent from the index contribute nothing and are never used as a
// divisor, so every returned score is finite. Results are sorted by score
// descending and truncated to limit.
func (e *Engine) SearchFulltext(query string, limit int) []FulltextResult {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	totalDocs := len(e.fulltext.documents)
	weight := 1.0 / float64(len(tokens))

	scores := make(map[string]float64)
	matched := make(map[string]map[string]bool)

	for _, token := range tokens {
		docs, ok := e.fulltext.words[token]
		if !ok {
			continue
		}
		idf := math.Log(float64(totalDocs) / float64(len(docs)))
		for id := range docs {
			scores[id] += weight * idf
			doc := e.fulltext.documents[id]
			if strings.Contains(strings.ToLower(doc.summary), token) {
				markField(matched, id, fieldSummary)
			}
			if strings.Contains(strings.ToLower(doc.description), token) {
				markField(matched, id, fieldDescription)
			}
		}
	}

	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > limit {
		ids = ids[:limit]
	}

	results := make([]FulltextResult, 0, len(ids))
	for _, id := range ids {
		doc := e.fulltext.documents[id]
		results = append(results, FulltextResult{
			Path:          doc.path,
			Method:        doc.method,
			Summary:       doc.summary,
			Description:   doc.description,
			Score:         scores[id],
			MatchedFields: fieldList(matched[id]),
		})
	}
	return results
}

func markField(matched map[string]map[string]bool, id, field string) {
	if matched[id] == nil {
		matched[id] = make(map[string]bool)
	}
	matched[id][field] = true
}

func fieldList(set map[string]bool) []string {
	fields := make([]string, 0, 2)
	if set[fieldSummary] {
		fields = append(fields, fieldSummary)
	}
	if set[fieldDescription] {
		fields = append(fields, fieldDescription)
	}
	return fields
}
