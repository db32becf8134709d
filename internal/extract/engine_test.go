package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/catalog"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/patterns"
	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractField_DeclarationNumber(t *testing.T) {
	e := New(nil)

	text := "اظهارنامه واردات کوتا 12345678 تاریخ 1403"
	result, err := e.ExtractField(text, catalog.FieldDeclarationNumber, types.ImportSingle)
	require.NoError(t, err)

	assert.Equal(t, "12345678", result.Value)
	assert.Equal(t, types.MethodRegex, result.Method)
	assert.Greater(t, result.Confidence, 0.5)
	assert.NotEmpty(t, result.Pattern)
}

func TestExtractField_NoDigitsNoMatch(t *testing.T) {
	e := New(nil)

	result, err := e.ExtractField("متن بدون هیچ رقمی", catalog.FieldDeclarationNumber, types.ImportSingle)
	require.NoError(t, err)

	assert.Empty(t, result.Value)
	assert.Zero(t, result.Confidence)
	assert.Equal(t, types.MethodNone, result.Method)
}

func TestExtractField_UnknownField(t *testing.T) {
	e := New(nil)

	result, err := e.ExtractField("کوتا 12345678", "فیلد_ناشناخته", types.ImportSingle)
	require.Error(t, err)

	var unknownErr *UnknownFieldError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "فیلد_ناشناخته", unknownErr.FieldName)
	assert.Equal(t, types.MethodNone, result.Method)
}

func TestExtractField_ConfidenceBounds(t *testing.T) {
	e := New(nil)

	texts := []string{
		"کوتا 12345678 تاریخ",
		"کد کالا: 84158100 کشور سازنده",
		"وزن خالص: 1250.5 کیلوگرم",
		"نوع ارز: USD نرخ ارز 420000",
		"تعداد بسته: 25 کارتن",
	}
	for _, text := range texts {
		for _, field := range catalog.FieldNames() {
			result, err := e.ExtractField(text, field, types.ImportSingle)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, result.Confidence, 0.0)
			assert.LessOrEqual(t, result.Confidence, 0.95)
		}
	}
}

func TestExtractField_ValidatorRejectsBadCandidates(t *testing.T) {
	e := New(nil)

	// A 7-digit number can match the trailing-date pattern but fails the
	// 8-digit minimum validator.
	result, err := e.ExtractField("کوتا 1234567 تاریخ", catalog.FieldDeclarationNumber, types.ImportSingle)
	require.NoError(t, err)
	assert.Equal(t, types.MethodNone, result.Method)
}

func TestExtractField_PrefersEarlierPatterns(t *testing.T) {
	e := New(nil)

	// Both the labeled pattern (index 1) and the generic box-number pattern
	// (index 3) match; the earlier, more specific one scores higher.
	text := "33. کد کالا: 84158100 شرح کالا یخچال"
	result, err := e.ExtractField(text, catalog.FieldCommodityCode, types.ImportSingle)
	require.NoError(t, err)
	assert.Equal(t, "84158100", result.Value)
}

func TestExtractField_UsesLearnedPatterns(t *testing.T) {
	repo := patterns.NewRepository()
	_, err := repo.Add(catalog.FieldCurrency, types.LearnedPattern{
		Pattern:      `پرداخت\s*با\s*([A-Z]{3})`,
		QualityScore: 0.8,
		Type:         types.PatternUserGenerated,
	})
	require.NoError(t, err)

	e := New(repo)

	// No built-in currency pattern matches this phrasing.
	text := "مبلغ قابل پرداخت با EUR تسویه شد"
	result, extractErr := e.ExtractField(text, catalog.FieldCurrency, types.ImportSingle)
	require.NoError(t, extractErr)
	assert.Equal(t, "EUR", result.Value)
}

func TestExtractField_SkipAccounting(t *testing.T) {
	repo := patterns.NewRepository()
	e := New(repo)

	// Add rejects patterns that do not compile, so a clean repository must
	// report zero skipped patterns.
	_, err := repo.Add(catalog.FieldDeclarationNumber, types.LearnedPattern{
		Pattern: `(\d{8`, QualityScore: 0.5, Type: types.PatternUserGenerated,
	})
	assert.Error(t, err)

	result, skipped, err := e.extractField("کوتا 12345678 تاریخ", catalog.FieldDeclarationNumber, types.ImportSingle)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, "12345678", result.Value)
}

func TestExtractPage_FirstPageScansAllFields(t *testing.T) {
	e := New(nil)

	text := "اظهارنامه واردات کوتا 12345678 تاریخ کد کالا: 84158100 وزن خالص: 1250.5"
	page := e.ExtractPage("decl.txt", text, 0)

	assert.Equal(t, types.StatusSuccess, page.Status)
	assert.Len(t, page.Extracted, len(catalog.FieldNames()))
	assert.Equal(t, "12345678", page.Extracted[catalog.FieldDeclarationNumber].Value)
	assert.Equal(t, "84158100", page.Extracted[catalog.FieldCommodityCode].Value)
	assert.Greater(t, page.SuccessRate, 0.0)
}

func TestExtractPage_ContinuationPageSkipsHeaderFields(t *testing.T) {
	e := New(nil)

	text := "کد کالا: 84158100 وزن خالص: 900 نوع ارز USD"
	page := e.ExtractPage("decl.txt", text, 1)

	assert.Contains(t, page.Extracted, catalog.FieldCommodityCode)
	assert.NotContains(t, page.Extracted, catalog.FieldCurrency)
	assert.NotContains(t, page.Extracted, catalog.FieldDeclarationNumber)
}

func TestExtractPage_EmptyText(t *testing.T) {
	e := New(nil)

	page := e.ExtractPage("blank.txt", "   ", 0)

	assert.Equal(t, types.StatusFailed, page.Status)
	assert.Equal(t, types.UnknownDoc, page.DocumentType)
	for field, result := range page.Extracted {
		assert.Equal(t, types.MethodNone, result.Method, "field %s", field)
	}
}

func TestExtractPages_Parallel(t *testing.T) {
	e := New(nil)

	pages := []PageInput{
		{File: "a.txt", Page: 0, Text: "واردات کوتا 12345678 تاریخ"},
		{File: "a.txt", Page: 1, Text: "کد کالا: 84158100 وزن خالص 500"},
		{File: "b.txt", Page: 0, Text: ""},
	}

	results, err := e.ExtractPages(context.Background(), pages)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "12345678", results[0].Extracted[catalog.FieldDeclarationNumber].Value)
	assert.Equal(t, "84158100", results[1].Extracted[catalog.FieldCommodityCode].Value)
	assert.Equal(t, types.StatusFailed, results[2].Status)
}

func TestExtractPages_CanceledContext(t *testing.T) {
	e := New(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pages := make([]PageInput, 20)
	for i := range pages {
		pages[i] = PageInput{Page: i, Text: strings.Repeat("کوتا 12345678 ", 10)}
	}

	_, err := e.ExtractPages(ctx, pages)
	assert.Error(t, err)
}
