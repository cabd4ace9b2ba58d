package af_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelljawhari/ArgRankLab/af"
)

func TestParse_WellFormed(t *testing.T) {
	input := `# reference framework
p af 3

1 2
2 3
`
	f, warnings, err := af.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, 2, f.AttackCount())
	assert.True(t, f.HasAttack(1, 2))
	assert.True(t, f.HasAttack(2, 3))
}

func TestParse_TabsAndExtraWhitespace(t *testing.T) {
	f, _, err := af.Parse(strings.NewReader("p af 2\n1\t2\n"))
	require.NoError(t, err)
	assert.True(t, f.HasAttack(1, 2))
}

func TestParse_SkipsUnknownArgumentsWithWarning(t *testing.T) {
	input := "p af 2\n1 2\n1 9\nbroken line here\n"
	f, warnings, err := af.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, f.AttackCount(), "only the valid attack survives")
	assert.Len(t, warnings, 2, "unknown argument and malformed line each warn")
}

func TestParse_HeaderErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{name: "missing header", input: "1 2\n"},
		{name: "no header at all", input: "# just a comment\n"},
		{name: "bad keyword", input: "p cnf 3\n"},
		{name: "bad count", input: "p af zero\n"},
		{name: "duplicate header", input: "p af 2\np af 2\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := af.Parse(strings.NewReader(tc.input))
			if !errors.Is(err, af.ErrParse) {
				t.Errorf("want ErrParse, got %v", err)
			}
		})
	}
}

func TestParse_SelfLoopAccepted(t *testing.T) {
	f, warnings, err := af.Parse(strings.NewReader("p af 1\n1 1\n"))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.True(t, f.SelfAttacking(1))
}

func TestParseFile_Missing(t *testing.T) {
	_, _, err := af.ParseFile("definitely/not/here.af")
	assert.Error(t, err)
}
