// Package extract implements the multi-candidate field extraction engine:
// for a field and document type it runs every candidate pattern against the
// text, validates and scores the matches, and picks a single winner.
package extract

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/catalog"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/classify"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/patterns"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/types"
)

// maxConfidence caps the confidence returned for any selected value.
const maxConfidence = 0.95

// batchParallelism bounds concurrent page extraction in ExtractPages.
const batchParallelism = 4

// Engine extracts structured fields from normalized OCR text. Extraction
// only reads the pattern repository, so any number of pages may be processed
// concurrently while learning mutates the repository between reads.
//
// Patterns run under Go's RE2 regexp engine, which matches in time linear in
// the input, so a user-supplied pattern cannot stall a batch the way a
// backtracking engine would. Patterns that fail to compile are skipped and
// counted, never fatal.
type Engine struct {
	repo *patterns.Repository

	mu       sync.RWMutex
	compiled map[string]*regexp.Regexp
}

// candidate is one validated match before final selection.
type candidate struct {
	value      string
	confidence float64
	pattern    string
	priority   int
	position   int
}

// New returns an engine reading candidate patterns from repo. A nil repo
// restricts extraction to the built-in catalog.
func New(repo *patterns.Repository) *Engine {
	if repo == nil {
		repo = patterns.NewRepository()
	}
	return &Engine{
		repo:     repo,
		compiled: make(map[string]*regexp.Regexp),
	}
}

// ExtractField runs every candidate pattern (built-in first, then learned)
// for the field against the text and returns the best surviving match, or
// the explicit empty result when nothing validates. An unknown field yields
// the empty result and an UnknownFieldError.
func (e *Engine) ExtractField(text, field string, docType types.DocumentType) (types.FieldResult, error) {
	result, _, err := e.extractField(text, field, docType)
	return result, err
}

func (e *Engine) extractField(text, field string, _ types.DocumentType) (types.FieldResult, int, error) {
	spec, ok := catalog.Lookup(field)
	if !ok {
		return types.NoResult(), 0, &UnknownFieldError{FieldName: field}
	}

	candidatePatterns := e.repo.PatternsFor(field, spec.Patterns)

	var candidates []candidate
	skipped := 0

	for idx, pattern := range candidatePatterns {
		re, err := e.compile(pattern)
		if err != nil {
			skipped++
			continue
		}

		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			// loc[2], loc[3] delimit the first capture group.
			if len(loc) < 4 || loc[2] < 0 {
				continue
			}
			raw := strings.TrimSpace(text[loc[2]:loc[3]])
			value := CleanValue(raw, spec.Class)
			if value == "" || !spec.Validator.Validate(value) {
				continue
			}
			candidates = append(candidates, candidate{
				value:      value,
				confidence: qualityScore(value, idx, loc[0], text),
				pattern:    pattern,
				priority:   spec.Priority,
				position:   loc[0],
			})
		}
	}

	if len(candidates) == 0 {
		return types.NoResult(), skipped, nil
	}

	// Priority ranks ahead of score: lower numeric priority wins even over a
	// higher-scoring match. Ties on all three keys fall back to catalog
	// order, which the stable sort preserves.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].priority != candidates[j].priority {
			return candidates[i].priority < candidates[j].priority
		}
		if candidates[i].confidence != candidates[j].confidence {
			return candidates[i].confidence > candidates[j].confidence
		}
		return candidates[i].position < candidates[j].position
	})

	best := candidates[0]
	confidence := best.confidence
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	return types.FieldResult{
		Value:      best.value,
		Confidence: confidence,
		Method:     types.MethodRegex,
		Pattern:    best.pattern,
	}, skipped, nil
}

// ExtractPage classifies the text and extracts the fields appropriate for
// the page: page 0 is scanned for every catalog field, continuation pages
// only for line-item attributes. Empty text yields a failed page result with
// an unknown document type.
func (e *Engine) ExtractPage(file, text string, page int) types.PageResult {
	if strings.TrimSpace(text) == "" {
		return emptyPageResult(file, page)
	}

	docType := classify.Classify(text)

	fields := catalog.FieldNames()
	if page > 0 {
		fields = catalog.LineItemFields()
	}

	extracted := make(map[string]types.FieldResult, len(fields))
	found := 0
	skippedTotal := 0
	for _, field := range fields {
		result, skipped, _ := e.extractField(text, field, docType)
		extracted[field] = result
		skippedTotal += skipped
		if result.Found() {
			found++
		}
	}

	successRate := 0.0
	if len(fields) > 0 {
		successRate = float64(found) / float64(len(fields)) * 100
	}

	status := types.StatusSuccess
	if skippedTotal > 0 {
		status = types.StatusPartial
	}

	return types.PageResult{
		File:            file,
		Page:            page,
		DocumentType:    docType,
		Extracted:       extracted,
		TextLength:      len(text),
		SuccessRate:     successRate,
		SkippedPatterns: skippedTotal,
		Status:          status,
	}
}

// PageInput is one page of OCR text submitted to ExtractPages.
type PageInput struct {
	File string
	Page int
	Text string
}

// ExtractPages extracts every page concurrently. Page extraction only reads
// shared state, so pages are embarrassingly parallel; a canceled context
// stops the remaining work.
func (e *Engine) ExtractPages(ctx context.Context, pages []PageInput) ([]types.PageResult, error) {
	results := make([]types.PageResult, len(pages))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchParallelism)

	for i, page := range pages {
		i, page := i, page
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = e.ExtractPage(page.File, page.Text, page.Page)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// compile returns a cached case-insensitive, dot-matches-newline regexp for
// the pattern.
func (e *Engine) compile(pattern string) (*regexp.Regexp, error) {
	e.mu.RLock()
	re, ok := e.compiled[pattern]
	e.mu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(`(?is)` + pattern)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.compiled[pattern] = re
	e.mu.Unlock()
	return re, nil
}

func emptyPageResult(file string, page int) types.PageResult {
	extracted := make(map[string]types.FieldResult)
	for _, field := range catalog.FieldNames() {
		extracted[field] = types.NoResult()
	}
	return types.PageResult{
		File:         file,
		Page:         page,
		DocumentType: types.UnknownDoc,
		Extracted:    extracted,
		Status:       types.StatusFailed,
	}
}
