package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractValuesLocation(t *testing.T) {
	testCases := []struct {
		name   string
		args   []string
		expect string
	}{
		{name: "short flag", args: []string{"-f", "custom.yaml", "summary"}, expect: "custom.yaml"},
		{name: "long flag", args: []string{"summary", "--file", "custom.yaml"}, expect: "custom.yaml"},
		{name: "long flag with equals", args: []string{"--file=custom.yaml"}, expect: "custom.yaml"},
		{name: "glued short flag", args: []string{"-fcustom.yaml", "summary"}, expect: "custom.yaml"},
		{name: "absent", args: []string{"summary"}, expect: ""},
		{name: "dangling flag", args: []string{"-f"}, expect: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, extractValuesLocation(tc.args))
		})
	}
}

func TestDefaultToSummary(t *testing.T) {
	assert.Equal(t, []string{"summary"}, defaultToSummary(nil))
	assert.Equal(t, []string{"summary", "-f", "x.yaml"}, defaultToSummary([]string{"-f", "x.yaml"}))
	assert.Equal(t, []string{"dump"}, defaultToSummary([]string{"dump"}))
	assert.Equal(t, []string{"--help"}, defaultToSummary([]string{"--help"}))
}
