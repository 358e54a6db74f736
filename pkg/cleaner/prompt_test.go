package cleaner

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/revsys/dic/pkg/commands"
	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	type scenario struct {
		input    string
		expected Decision
	}

	scenarios := []scenario{
		{"y\n", Accepted},
		{"Y\n", Accepted},
		{"y\r\n", Accepted},
		{"y", Accepted},
		{"\n", Declined},
		{"n\n", Declined},
		{"N\n", Declined},
		{"yes\n", Declined},
		{"no\n", Declined},
		{" y\n", Declined},
		{"yy\n", Declined},
		{"n\ny\n", Declined},
	}

	for _, s := range scenarios {
		out := &bytes.Buffer{}
		decision, err := Confirm(strings.NewReader(s.input), out, "Delete these Docker images? [y/N]")
		assert.NoError(t, err, s.input)
		assert.Equal(t, s.expected, decision, "input %q", s.input)
		assert.Equal(t, "Delete these Docker images? [y/N]\n", out.String())
	}
}

func TestConfirmInputClosed(t *testing.T) {
	decision, err := Confirm(strings.NewReader(""), &bytes.Buffer{}, "question")
	assert.Equal(t, Declined, decision)
	assert.True(t, commands.HasErrorCode(err, commands.InputClosed))
}

func TestConfirmReadError(t *testing.T) {
	boom := errors.New("boom")
	decision, err := Confirm(iotest.ErrReader(boom), &bytes.Buffer{}, "question")
	assert.Equal(t, Declined, decision)
	assert.True(t, commands.HasErrorCode(err, commands.InputClosed))
	assert.ErrorIs(t, err, boom)
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "accepted", Accepted.String())
	assert.Equal(t, "declined", Declined.String())
}
