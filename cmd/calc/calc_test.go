package calc

import (
	"bytes"
	"gacha_calculator/pkg/probability"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := Command()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalc(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "one percent hundred draws", args: []string{"--probability", "1", "--times", "100"}, want: "63.39676587%\n"},
		{name: "certain draw clamped", args: []string{"-p", "100", "-n", "1"}, want: "99.99999999%\n"},
		{name: "zero draws", args: []string{"-p", "50", "-n", "0"}, want: "0%\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCalcRejectsInvalidInput(t *testing.T) {
	_, err := run("-p", "101", "-n", "1")
	assert.ErrorIs(t, err, probability.ErrProbabilityOutOfRange)

	_, err = run("-p", "10", "-n", "-1")
	assert.ErrorIs(t, err, probability.ErrNegativeTimes)
}

func TestCalcRequiresFlags(t *testing.T) {
	_, err := run("-p", "10")
	assert.Error(t, err)
}
