package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "empty",
			password: "",
			wantErr:  true,
		},
		{
			name:     "short digits",
			password: "12345",
			wantErr:  true,
		},
		{
			name:     "dictionary word",
			password: "password",
			wantErr:  true,
		},
		{
			name:     "repeated characters",
			password: "aaaaaaaaaaaaaaaaaaaa",
			wantErr:  true,
		},
		{
			name:     "mixed classes and length",
			password: "k9#Vw2$pXq7!mZ4r",
			wantErr:  false,
		},
		{
			name:     "long passphrase",
			password: "corridor-ox1de-Trumpet-94",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmptySentinel(t *testing.T) {
	assert.ErrorIs(t, Validate(""), ErrEmpty)
}

func TestEntropyIncreasesWithLength(t *testing.T) {
	assert.Greater(t, Entropy("k9#Vw2$pXq7!mZ4r"), Entropy("k9#V"))
}
