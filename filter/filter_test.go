package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type app struct {
	Name      string
	Type      string
	PortOpen  bool
	Autostart bool
}

var apps = []app{
	{Name: "blog", Type: "wordpress"},
	{Name: "api", Type: "custom", PortOpen: true, Autostart: true},
	{Name: "static_site", Type: "static"},
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		want       []string
	}{
		{
			name:       "equality on a string field",
			expression: `Type == "static"`,
			want:       []string{"static_site"},
		},
		{
			name:       "boolean field",
			expression: `PortOpen`,
			want:       []string{"api"},
		},
		{
			name:       "combined conditions",
			expression: `PortOpen && Autostart`,
			want:       []string{"api"},
		},
		{
			name:       "string operators",
			expression: `Name startsWith "b"`,
			want:       []string{"blog"},
		},
		{
			name:       "no matches",
			expression: `Type == "rails"`,
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := Compile[app](tt.expression)
			require.NoError(t, err)

			var names []string
			for _, item := range Apply(apps, pred) {
				names = append(names, item.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
	}{
		{"syntax error", `Type == `},
		{"unknown field", `Flavor == "x"`},
		{"not a boolean", `Name`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile[app](tt.expression)
			assert.Error(t, err)
		})
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	pred, err := Compile[app](`Type != "custom"`)
	require.NoError(t, err)

	matched := Apply(apps, pred)
	require.Len(t, matched, 2)
	assert.Equal(t, "blog", matched[0].Name)
	assert.Equal(t, "static_site", matched[1].Name)
}
