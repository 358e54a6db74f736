package cleaner

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/revsys/dic/pkg/commands"
	"github.com/revsys/dic/pkg/utils"
)

// Decision is the operator's answer to a yes/no question
type Decision int

const (
	Declined Decision = iota
	Accepted
)

func (d Decision) String() string {
	if d == Accepted {
		return "accepted"
	}
	return "declined"
}

// Confirm writes question to out and reads a single line from in. Only "y"
// (in any case) is taken as a yes. A stream that ends before any answer is
// read is an InputClosed error rather than a no.
func Confirm(in io.Reader, out io.Writer, question string) (Decision, error) {
	if _, err := fmt.Fprintln(out, question); err != nil {
		return Declined, err
	}

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (err != io.EOF || answer == "") {
		return Declined, commands.NewComplexError(commands.InputClosed, "could not read an answer", err)
	}

	answer = strings.TrimSuffix(utils.NormalizeLinefeeds(answer), "\n")
	if strings.EqualFold(answer, "y") {
		return Accepted, nil
	}
	return Declined, nil
}
