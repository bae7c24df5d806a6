package taxid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"formatted", "529.982.247-25", true},
		{"digits only", "71410700011", true},
		{"leading zero", "081.351.363-40", true},
		{"wrong check digits", "123.456.789-01", false},
		{"repeated digits", "111.111.111-11", false},
		{"too short", "5299822472", false},
		{"too long", "529982247250", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, Validate(tt.cpf))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "52998224725", Normalize("529.982.247-25"))
	assert.Equal(t, "52998224725", Normalize(" 529 982 247 25 "))
	assert.Equal(t, "", Normalize("abc"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "373.532.473-80", Format("37353247380"))
	assert.Equal(t, "373.532.473-80", Format("373.532.473-80"))
	assert.Equal(t, "123", Format("123"))
}

func TestComplete(t *testing.T) {
	assert.Equal(t, "52998224725", Complete("529982247"))
	assert.Equal(t, "08135136340", Complete("081.351.363"))
	assert.Equal(t, "", Complete("1234"))
	assert.True(t, Validate(Complete("100000001")))
}
