package valorant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguages(t *testing.T) {
	all := Languages()
	assert.Len(t, all, 18)

	for _, l := range all {
		assert.True(t, l.IsValid(), "%s should be valid", l)
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input   string
		want    Language
		wantErr bool
	}{
		{input: "en-US", want: LanguageEnglish},
		{input: "zh-TW", want: LanguageChineseTraditional},
		{input: "pt-BR", want: LanguagePortuguese},
		{input: "en-us", wantErr: true},
		{input: "klingon", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLanguage(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidLanguage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}
