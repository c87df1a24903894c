package console

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"biller/domain/entities"
	"biller/domain/utils"

	"github.com/fatih/color"
)

const defaultWidth = 70

// Style renders the console chrome: headers, separators, tagged messages,
// account tables and transaction receipts.
type Style struct {
	out   io.Writer
	width int

	successTag func(format string, a ...interface{}) string
	errorTag   func(format string, a ...interface{}) string
	infoTag    func(format string, a ...interface{}) string
	warnTag    func(format string, a ...interface{}) string
}

// NewStyle creates a Style writing to out.
func NewStyle(out io.Writer) *Style {
	return &Style{
		out:        out,
		width:      defaultWidth,
		successTag: color.New(color.FgGreen, color.Bold).SprintfFunc(),
		errorTag:   color.New(color.FgRed, color.Bold).SprintfFunc(),
		infoTag:    color.New(color.FgCyan).SprintfFunc(),
		warnTag:    color.New(color.FgYellow).SprintfFunc(),
	}
}

// PrintSeparator prints the main separator line.
func (s *Style) PrintSeparator() {
	fmt.Fprintln(s.out, strings.Repeat("=", s.width))
}

// PrintThinSeparator prints the thin separator line.
func (s *Style) PrintThinSeparator() {
	fmt.Fprintln(s.out, strings.Repeat("-", s.width))
}

// PrintHeader prints a centered title between separators.
func (s *Style) PrintHeader(title string) {
	s.PrintSeparator()
	fmt.Fprintln(s.out, s.center(title))
	s.PrintSeparator()
}

// PrintSectionTitle prints a section title over a thin separator.
func (s *Style) PrintSectionTitle(title string) {
	fmt.Fprintf(s.out, "\n%s\n", title)
	s.PrintThinSeparator()
}

// PrintMenu prints numbered options followed by a separator.
func (s *Style) PrintMenu(options []string) {
	for i, option := range options {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, option)
	}
	s.PrintSeparator()
}

// PrintSuccess prints a tagged success message.
func (s *Style) PrintSuccess(message string) {
	fmt.Fprintf(s.out, "\n%s %s\n", s.successTag("[SUCCESS]"), message)
	s.PrintSeparator()
}

// PrintError prints a tagged error message.
func (s *Style) PrintError(message string) {
	fmt.Fprintf(s.out, "\n%s %s\n", s.errorTag("[ERROR]"), message)
	s.PrintSeparator()
}

// PrintInfo prints a tagged informational message.
func (s *Style) PrintInfo(message string) {
	fmt.Fprintf(s.out, "\n%s %s\n", s.infoTag("[INFO]"), message)
	s.PrintSeparator()
}

// PrintWarning prints a tagged warning message.
func (s *Style) PrintWarning(message string) {
	fmt.Fprintf(s.out, "\n%s %s\n", s.warnTag("[WARNING]"), message)
	s.PrintSeparator()
}

// PrintAccountsTable prints the registered accounts in id order.
func (s *Style) PrintAccountsTable(accounts map[string]*entities.Account) {
	if len(accounts) == 0 {
		fmt.Fprintln(s.out, "No accounts registered.")
		return
	}

	keys := sortedKeys(accounts)

	fmt.Fprintf(s.out, "\n%s\n", s.center("REGISTERED ACCOUNTS"))
	s.PrintThinSeparator()
	fmt.Fprintf(s.out, "%-5s %-25s %-12s %s\n", "ID", "Name", "Created", "Balance")
	s.PrintThinSeparator()
	for _, key := range keys {
		account := accounts[key]
		name := account.Name
		if utf8.RuneCountInString(name) > 24 {
			name = string([]rune(name)[:24])
		}
		created := account.Created.String()
		if len(created) > 10 {
			created = created[:10]
		}
		fmt.Fprintf(s.out, "%-5s %-25s %-12s %s\n", key, name, created, utils.FormatCurrency(account.Balance))
	}
	s.PrintSeparator()
}

// PrintReceipt prints a transaction confirmation block.
func (s *Style) PrintReceipt(service string, amount, newBalance string, token, when string) {
	fmt.Fprintf(s.out, "\n%s\n", s.center("TRANSACTION COMPLETED"))
	s.PrintThinSeparator()
	fmt.Fprintf(s.out, "Service: %s\n", service)
	fmt.Fprintf(s.out, "Amount: %s\n", amount)
	if token != "" {
		fmt.Fprintf(s.out, "Reference Token: %s\n", token)
	}
	fmt.Fprintf(s.out, "Date: %s\n", when)
	fmt.Fprintf(s.out, "New Balance: %s\n", newBalance)
	s.PrintSeparator()
}

// PrintHistory prints recent transaction log entries.
func (s *Style) PrintHistory(entries []*entities.TransactionLogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No transactions recorded.")
		return
	}
	fmt.Fprintf(s.out, "%-20s %-16s %-15s %s\n", "Date", "Type", "Amount", "Detail")
	s.PrintThinSeparator()
	for _, entry := range entries {
		detail := entry.Service
		if entry.Token != "" {
			detail = fmt.Sprintf("%s (token %s)", detail, entry.Token)
		}
		fmt.Fprintf(s.out, "%-20s %-16s %-15s %s\n",
			entry.Timestamp.String(), entry.Type.Description(), utils.FormatCurrency(entry.Amount), detail)
	}
	s.PrintSeparator()
}

func (s *Style) center(text string) string {
	length := utf8.RuneCountInString(text)
	if length >= s.width {
		return text
	}
	pad := (s.width - length) / 2
	return strings.Repeat(" ", pad) + text
}
