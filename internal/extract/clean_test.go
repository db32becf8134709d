package extract

import (
	"testing"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestCleanValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		class catalog.FieldClass
		want  string
	}{
		{"numeric strips noise", "ش 12345678 .", catalog.ClassNumeric, "12345678"},
		{"numeric empty stays empty", "---", catalog.ClassNumeric, ""},
		{"decimal keeps one dot", "1.250.75", catalog.ClassDecimal, "1.25075"},
		{"decimal plain", "1250.5 کیلو", catalog.ClassDecimal, "1250.5"},
		{"text strips digits", "یخچال 123 فریزر", catalog.ClassText, "یخچال فریزر"},
		{"text collapses spaces", "یخچال    برقی", catalog.ClassText, "یخچال برقی"},
		{"currency uppercases", "usd ", catalog.ClassCurrency, "USD"},
		{"currency strips noise", "U.S.D", catalog.ClassCurrency, "USD"},
		{"none trims only", "  117  ", catalog.ClassNone, "117"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanValue(tt.value, tt.class))
		})
	}
}

func TestCleanValue_Idempotent(t *testing.T) {
	cases := []struct {
		value string
		class catalog.FieldClass
	}{
		{"ش 12345678", catalog.ClassNumeric},
		{"1.250.75", catalog.ClassDecimal},
		{"یخچال 123 فریزر!", catalog.ClassText},
		{"usd", catalog.ClassCurrency},
		{"  117  ", catalog.ClassNone},
	}

	for _, tc := range cases {
		once := CleanValue(tc.value, tc.class)
		assert.Equal(t, once, CleanValue(once, tc.class), "clean(clean(x)) == clean(x) for %q", tc.value)
	}
}

func TestQualityScore_Clamped(t *testing.T) {
	text := "کوتا کالا شرح وزن کشور ارز گمرک 12345678"
	score := qualityScore("12345678", 0, 0, text)
	assert.LessOrEqual(t, score, 0.9)
	assert.GreaterOrEqual(t, score, 0.1)

	// Late pattern index, long value, second half, negative context.
	long := "تاریخ ساعت " + "xxxxxxxxxxxxxxxxxxxxxxxxxxxxx"
	score = qualityScore("123456789012345678901", 10, len(long)-1, long)
	assert.Less(t, score, 0.5)
	assert.GreaterOrEqual(t, score, 0.1)
}

func TestQualityScore_PositionBonus(t *testing.T) {
	text := "کوتا 12345678 پر از متن اضافی در انتهای این سند قرار گرفته است"
	early := qualityScore("12345678", 8, 0, text)
	late := qualityScore("12345678", 8, len(text)-8, text)
	assert.Greater(t, early, late)
}
