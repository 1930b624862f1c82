package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"shopadmin/internal/domain"
	"shopadmin/internal/util/memzero"
)

// prompter reads operator input. One prompter is shared per command run so
// buffered input is never lost between prompts.
type prompter struct {
	in   *bufio.Reader
	tty  *os.File // set when input is an interactive terminal
	out  io.Writer
	auto bool // answer yes to every confirmation
}

func newPrompter(cmd *cobra.Command) *prompter {
	in := cmd.InOrStdin()
	p := &prompter{in: bufio.NewReader(in), out: cmd.OutOrStdout()}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.tty = f
	}
	return p
}

// Line prints label and returns the next input line, trimmed.
func (p *prompter) Line(label string) (string, error) {
	s, err := p.read(label)
	return strings.TrimSpace(s), err
}

// Secret reads a value without echo when input is a terminal.
func (p *prompter) Secret(label string) (string, error) {
	if p.tty == nil {
		return p.read(label)
	}
	fmt.Fprint(p.out, label)
	b, err := term.ReadPassword(int(p.tty.Fd()))
	defer memzero.Bytes(b)
	fmt.Fprintln(p.out)
	return string(b), err
}

// Confirm implements domain.Confirmer. End of input counts as no.
func (p *prompter) Confirm(prompt string) (bool, error) {
	if p.auto {
		return true, nil
	}
	ans, err := p.Line(prompt + " [y/N]: ")
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(ans) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (p *prompter) read(label string) (string, error) {
	if label != "" {
		fmt.Fprint(p.out, label)
	}
	s, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

var _ domain.Confirmer = (*prompter)(nil)
