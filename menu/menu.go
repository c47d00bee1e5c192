// Package menu is the interactive text front end of the ledger. It turns
// typed input into ledger calls and prints the outcome.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/labstack/gommon/color"
	"go.uber.org/zap"

	"banking-ledger/ledger"
)

const banner = `
### Main Menu ###
1. Create client
2. Create account
3. Deposit
4. Withdraw
5. Show statement
6. List accounts
0. Exit`

type Menu struct {
	ledger *ledger.Ledger
	in     *bufio.Scanner
	out    io.Writer
	color  *color.Color
	logger *zap.Logger
}

type Option func(*Menu)

// WithoutColor disables ANSI colouring of status lines.
func WithoutColor() Option {
	return func(m *Menu) {
		m.color.Disable()
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(m *Menu) {
		m.logger = logger
	}
}

func New(l *ledger.Ledger, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		ledger: l,
		in:     bufio.NewScanner(in),
		out:    out,
		color:  color.New(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the menu until the user exits, input ends or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	m.println("\n=== Welcome to the banking system! ===")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.println(banner)
		option, err := m.prompt("Choose an option: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch option {
		case "1":
			err = m.createClient()
		case "2":
			err = m.createAccount()
		case "3":
			err = m.deposit()
		case "4":
			err = m.withdraw()
		case "5":
			err = m.statement()
		case "6":
			m.listAccounts()
		case "0":
			m.success("Leaving the banking system. See you soon!")
			return nil
		default:
			m.failure("Invalid option! Please try again.")
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// prompt prints label and reads one trimmed line.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("could not read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) success(msg string) {
	m.println(m.color.Green("\n=== " + msg + " ==="))
}

func (m *Menu) failure(msg string) {
	m.println(m.color.Red("\n@@@ " + msg + " @@@"))
}
