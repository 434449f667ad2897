package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpolate(t *testing.T) {
	vars := Vars{Name: "stone", Namespace: "mymod"}

	tests := []struct {
		name string
		text string
		want string
	}{
		{"no placeholders", `{"parent": "minecraft:block/cube"}`, `{"parent": "minecraft:block/cube"}`},
		{"both placeholders", `{"model": "{namespace}:block/{name}"}`, `{"model": "mymod:block/stone"}`},
		{"repeated", "{name}-{name}", "stone-stone"},
		{"case insensitive", "{NAME} {Namespace} {nAmE}", "stone mymod stone"},
		{"unknown key kept", "{texture} {name}", "{texture} stone"},
		{"unclosed brace", "{name", "{name"},
		{"nested braces", "{{name}}", "{stone}"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Interpolate(tt.text, vars))
		})
	}
}

func TestInterpolateIsLiteralSafe(t *testing.T) {
	vars := Vars{Name: "{namespace}$1\\", Namespace: "mod"}

	assert.Equal(t, "mod:{namespace}$1\\", Interpolate("{namespace}:{name}", vars))
}
