package classify

import (
	"strings"
	"testing"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Direction(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.DocumentType
	}{
		{
			name: "import keywords dominate",
			text: "اظهارنامه واردات کوتا 12345678",
			want: types.ImportSingle,
		},
		{
			name: "export keywords dominate",
			text: "اظهارنامه صادرات کالا export خروج",
			want: types.ExportSingle,
		},
		{
			name: "tie goes to import",
			text: "واردات صادرات",
			want: types.ImportSingle,
		},
		{
			name: "no keywords defaults to import",
			text: "سند بدون کلیدواژه",
			want: types.ImportSingle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassify_MultiItem(t *testing.T) {
	// Two distinct indicators each repeated twice: commodity code and weight.
	text := "واردات کد کالا 11111111 وزن خالص 100 کد کالا 22222222 وزن خالص 200"
	assert.Equal(t, types.ImportMulti, Classify(text))

	// One repeated indicator is not enough.
	single := "واردات کد کالا 11111111 کد کالا 22222222 وزن خالص 100"
	assert.Equal(t, types.ImportSingle, Classify(single))
}

func TestClassify_LongTextForcesMulti(t *testing.T) {
	text := "واردات کوتا 12345678 " + strings.Repeat("متن طولانی سند گمرکی ", 300)
	assert.Greater(t, len(text), 5000)
	assert.Equal(t, types.ImportMulti, Classify(text))
}
