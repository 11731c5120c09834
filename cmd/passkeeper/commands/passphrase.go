package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/howeyc/gopass"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassphrase returns the -p value, prompts on a terminal, or reads one
// line from piped stdin.
func readPassphrase(cmd *cobra.Command) (string, error) {
	if passphrase != "" {
		return passphrase, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Passphrase: ")
		b, err := gopass.GetPasswd()
		if err != nil {
			return "", errors.Wrap(err, "cannot read passphrase")
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", errors.Wrap(err, "cannot read passphrase from stdin")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
