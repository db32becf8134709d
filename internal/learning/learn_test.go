package learning

import (
	"testing"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/catalog"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/patterns"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCorrection(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		corrected string
		want      types.CorrectionType
	}{
		{"addition", "", "123", types.CorrectionAddition},
		{"deletion", "123", "", types.CorrectionDeletion},
		{"refinement", "A12", "A123", types.CorrectionRefinement},
		{"replacement", "ABC", "XYZ", types.CorrectionReplacement},
		{"both empty", "", "", types.CorrectionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCorrection(tt.original, tt.corrected))
		})
	}
}

func TestAreSimilar(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"exact after normalization", "USD ", "usd", true},
		{"containment", "12345678", "123456789", true},
		{"close edit distance", "abcdefghij", "abcdefghxx", true},
		{"dissimilar", "ABC", "XYZ", false},
		{"empty never similar", "", "123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AreSimilar(tt.a, tt.b))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("abc", "abc"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("", "abc"), 1e-9)
	// One substitution in four characters.
	assert.InDelta(t, 0.75, Similarity("abcd", "abxd"), 1e-9)
}

func TestCorrectionQuality(t *testing.T) {
	// Addition of a digit-bearing value of good length:
	// 0.5 + 0.2 (length) + 0.3 (addition) + 0.1 (digits) = 1.0 cap.
	assert.InDelta(t, 1.0, CorrectionQuality("", "12345678"), 1e-9)

	// Replacement with short Latin value: 0.5 + 0.2 (length) + 0.1 = 0.8.
	assert.InDelta(t, 0.8, CorrectionQuality("ABC", "XYZ"), 1e-9)

	// Persian refinement: 0.5 + 0.2 (length) + 0.2 (refinement) + 0.1 (script) = 1.0.
	assert.InDelta(t, 1.0, CorrectionQuality("یخچال", "یخچال فریزر"), 1e-9)

	clamped := CorrectionQuality("x", "")
	assert.GreaterOrEqual(t, clamped, 0.1)
	assert.LessOrEqual(t, clamped, 1.0)
}

func TestSynthesize_Shapes(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		variants int
		contains string
	}{
		{"pure integer", "12345678", 3, `(12345678)`},
		{"decimal", "1250.5", 3, `1250\.?\d*`},
		{"persian word", "یخچال", 3, `(یخچال)\s*\d`},
		{"persian phrase", "یخچال فریزر", 2, `[\s:](یخچال فریزر)[\s\n]`},
		{"currency code", "USD", 3, `ارز[\s:]*(USD)`},
		{"fallback", "mixed123x", 1, `(mixed123x)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variants := Synthesize(tt.value)
			assert.Len(t, variants, tt.variants)
			assert.Contains(t, variants, tt.contains)
		})
	}
}

func TestSelectBestPattern_PrefersBoundedVariants(t *testing.T) {
	variants := Synthesize("12345678")
	best := SelectBestPattern(variants, catalog.FieldNetWeight)
	assert.Contains(t, best, `[\s:]`)
}

func TestSelectBestPattern_FieldBonus(t *testing.T) {
	// The digit bonus lifts the \d-anchored variant above the bare literal
	// for the declaration number, though the bounded variant still wins.
	variants := []string{`(12345678)`, `12345678\s*[^\d]`}
	best := SelectBestPattern(variants, catalog.FieldDeclarationNumber)
	assert.Equal(t, `12345678\s*[^\d]`, best)
}

func TestLearn_ProcessesCorrections(t *testing.T) {
	repo := patterns.NewRepository()
	p := NewProcessor(repo)

	session, learned := p.Learn(map[string]types.FieldEdit{
		"page0_شماره_کوتا": {
			FieldName:     catalog.FieldDeclarationNumber,
			OriginalValue: "",
			CurrentValue:  "12345678",
			Confidence:    0.0,
			Method:        types.MethodNone,
		},
		"page0_وزن_خالص": {
			FieldName:     catalog.FieldNetWeight,
			OriginalValue: "1250.5",
			CurrentValue:  "1250.5", // unchanged, must be ignored
		},
	})

	require.True(t, learned)
	require.NotNil(t, session)
	require.Len(t, session.Corrections, 1)
	assert.Equal(t, types.CorrectionAddition, session.Corrections[0].Type)
	require.Len(t, session.NewPatterns, 1)

	stored := repo.LearnedFor(catalog.FieldDeclarationNumber)
	require.Len(t, stored, 1)
	assert.Equal(t, 1, stored[0].SuccessCount)
	assert.Equal(t, 1, stored[0].TotalAttempts)
	assert.InDelta(t, 100.0, stored[0].Accuracy, 1e-9)
	assert.Equal(t, types.PatternUserGenerated, stored[0].Type)

	assert.Len(t, repo.Corrections(), 1)
	assert.Len(t, repo.Sessions(), 1)
}

func TestLearn_DeletionGeneratesNoPattern(t *testing.T) {
	repo := patterns.NewRepository()
	p := NewProcessor(repo)

	session, learned := p.Learn(map[string]types.FieldEdit{
		"page0_بیمه": {
			FieldName:     catalog.FieldInsurance,
			OriginalValue: "99999",
			CurrentValue:  "",
		},
	})

	require.True(t, learned)
	require.Len(t, session.Corrections, 1)
	assert.Equal(t, types.CorrectionDeletion, session.Corrections[0].Type)
	assert.Empty(t, session.NewPatterns)
	assert.Empty(t, repo.LearnedFor(catalog.FieldInsurance))
}

func TestLearn_NoChangesIsNoop(t *testing.T) {
	repo := patterns.NewRepository()
	p := NewProcessor(repo)

	session, learned := p.Learn(map[string]types.FieldEdit{
		"page0_نوع_ارز": {FieldName: catalog.FieldCurrency, OriginalValue: "USD", CurrentValue: "USD"},
	})

	assert.False(t, learned)
	assert.Nil(t, session)
	assert.Empty(t, repo.Sessions())
}
