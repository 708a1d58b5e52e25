package teller

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amirasaad/bankaccount/pkg/money"
)

// ErrNoAnswer is returned when input ends before a rate question is answered.
var ErrNoAnswer = errors.New("no answer from operator")

// PromptExchange asks the operator for every conversion. Rates never live in
// this process; the person at the terminal is the exchange.
type PromptExchange struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptExchange returns an exchange reading answers from in and writing
// questions to out.
func NewPromptExchange(in *bufio.Reader, out io.Writer) *PromptExchange {
	return &PromptExchange{in: in, out: out}
}

// Convert asks how much amount units of quote are worth in base.
func (p *PromptExchange) Convert(amount int64, base, quote money.Code) (int64, error) {
	if _, err := fmt.Fprintf(p.out, "How much is %d %s in %s? ", amount, quote, base); err != nil {
		return 0, err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return 0, ErrNoAnswer
		}
		return 0, err
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return 0, ErrNoAnswer
	}
	converted, err := strconv.ParseInt(answer, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("answer %q is not a whole amount of %s", answer, base)
	}
	return converted, nil
}
