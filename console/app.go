// Package console implements the interactive menu surface: account selection,
// the logged-in main menu, purchases, bill payments and the exit flow. It is
// single-threaded; one blocking prompt at a time.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"biller/config"
	"biller/domain/entities"
	"biller/domain/services"
	"biller/domain/utils"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// historyDisplayLimit caps how many log entries the history screen shows.
const historyDisplayLimit = 10

// App drives the menu loop. It owns at most one Session at a time; selecting
// an account logs in, logout or exit syncs the registry balance and drops it.
type App struct {
	cfg       *config.Config
	directory *services.Directory
	style     *Style
	in        *bufio.Reader
	out       io.Writer
	session   *services.Session
	running   bool
}

// NewApp wires the console against a directory and the streams it talks over.
func NewApp(cfg *config.Config, directory *services.Directory, in io.Reader, out io.Writer) *App {
	return &App{
		cfg:       cfg,
		directory: directory,
		style:     NewStyle(out),
		in:        bufio.NewReader(in),
		out:       out,
	}
}

// Run executes the menu loop until the user confirms exit, input ends, or the
// context is cancelled (interrupt). An interrupt routes through the same exit
// path as the menu option, so a logged-in session still gets its logout sync.
func (a *App) Run(ctx context.Context) error {
	a.running = true

	a.style.PrintHeader("JM TSIE BILLING SYSTEM")
	fmt.Fprintln(a.out, "Welcome to the billing management system!")
	fmt.Fprintln(a.out, "Features: Account Management, Transactions, File Storage")
	a.style.PrintSeparator()

	for a.running {
		if ctx.Err() != nil {
			a.shutdown()
			return nil
		}
		if a.session != nil {
			a.mainMenu()
		} else {
			a.accountMenu()
		}
	}
	return nil
}

// accountMenu is shown while no account is selected.
func (a *App) accountMenu() {
	accounts := a.directory.List()

	a.style.PrintHeader("ACCOUNT MANAGEMENT")
	if len(accounts) > 0 {
		a.style.PrintAccountsTable(accounts)
		fmt.Fprintln(a.out, "Available Options:")
	} else {
		fmt.Fprintln(a.out, "No accounts found. Create your first account!")
	}

	a.style.PrintMenu([]string{
		"Create New Account",
		"Select Existing Account",
		"View Account Details",
		"Exit System",
	})

	switch a.menuChoice(1, 4) {
	case 1:
		a.createAccount()
	case 2:
		a.selectAccount()
	case 3:
		a.viewAccountDetails()
	case 4:
		a.confirmExit()
	}
}

// mainMenu is shown while logged in.
func (a *App) mainMenu() {
	name := a.accountName(a.session.AccountID())

	a.style.PrintHeader("MAIN MENU")
	fmt.Fprintf(a.out, "Account: %s\n", name)
	fmt.Fprintf(a.out, "Balance: %s\n", utils.FormatCurrency(a.session.Balance()))

	a.style.PrintMenu([]string{
		"Purchase Services",
		"Pay Bills",
		"Deposit Money",
		"Withdraw Money",
		"Check Balance",
		"Account Information",
		"Transaction History",
		"Logout",
		"Exit System",
	})

	switch a.menuChoice(1, 9) {
	case 1:
		a.catalogMenu("PURCHASE SERVICES", entities.Services(), a.processPurchase)
	case 2:
		a.catalogMenu("PAY BILLS", entities.Bills(), a.processPayment)
	case 3:
		a.depositMoney()
	case 4:
		a.withdrawMoney()
	case 5:
		a.checkBalance()
	case 6:
		a.accountInfo()
	case 7:
		a.transactionHistory()
	case 8:
		a.logout()
	case 9:
		a.confirmExit()
	}
}

func (a *App) createAccount() {
	a.style.PrintSectionTitle("CREATE NEW ACCOUNT")

	name := a.prompt("Enter account holder name: ")
	if strings.TrimSpace(name) == "" {
		a.HandleError("create account", NewUserError("Name cannot be empty!", "empty account name entered"))
		return
	}

	balance := a.directory.DefaultBalance()
	input := a.prompt(fmt.Sprintf("Enter initial balance (press Enter for %s): ", utils.FormatCurrency(balance)))
	if strings.TrimSpace(input) != "" {
		parsed, err := services.ParseAmount(input)
		if err != nil {
			a.HandleError("create account", err)
			return
		}
		balance = parsed
	}

	id, account, err := a.directory.Create(name, balance)
	if err != nil {
		if errors.Is(err, services.ErrCreateFailed) {
			a.HandleError("create account", NewSystemError(err, "account creation failed"))
		} else {
			a.HandleError("create account", err)
		}
		return
	}

	a.style.PrintSuccess(fmt.Sprintf(
		"Account created successfully!\nAccount ID: %d\nName: %s\nInitial Balance: %s",
		id, account.Name, utils.FormatCurrency(account.Balance)))

	if a.confirm("Login to this account now? (y/N): ") {
		a.login(id, account.Name)
	}
}

func (a *App) selectAccount() {
	accounts := a.directory.List()
	if len(accounts) == 0 {
		a.style.PrintError("No accounts available!")
		return
	}

	a.style.PrintSectionTitle("SELECT ACCOUNT")
	a.style.PrintAccountsTable(accounts)

	input := a.prompt("Enter Account ID: ")
	id, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		a.style.PrintError("Invalid Account ID!")
		return
	}

	account, err := a.directory.Get(id)
	if err != nil {
		a.HandleError("select account", err)
		return
	}
	a.login(id, account.Name)
}

func (a *App) login(id int64, name string) {
	a.session = services.NewSession(id, a.cfg.DefaultBalance, a.directory.Store())
	a.style.PrintSuccess(fmt.Sprintf(
		"Successfully logged into: %s\nCurrent Balance: %s",
		name, utils.FormatCurrency(a.session.Balance())))
}

func (a *App) viewAccountDetails() {
	accounts := a.directory.List()

	a.style.PrintSectionTitle("ACCOUNT DETAILS")
	if len(accounts) == 0 {
		fmt.Fprintln(a.out, "No accounts found.")
	} else {
		store := a.directory.Store()
		for _, key := range sortedKeys(accounts) {
			account := accounts[key]
			// Balance file is the source of truth, not the registry cache.
			balance := store.LoadBalance(account.ID, account.Balance)
			fmt.Fprintf(a.out, "\nAccount ID: %s\n", key)
			fmt.Fprintf(a.out, "Name: %s\n", account.Name)
			fmt.Fprintf(a.out, "Created: %s\n", account.Created)
			fmt.Fprintf(a.out, "Current Balance: %s\n", utils.FormatCurrency(balance))
			fmt.Fprintln(a.out, strings.Repeat("-", 40))
		}
	}
	a.pause()
}

func (a *App) catalogMenu(title string, items []entities.CatalogItem, process func(entities.CatalogItem)) {
	a.style.PrintSectionTitle(title)

	fmt.Fprintln(a.out, "Available Options:")
	for i, item := range items {
		fmt.Fprintf(a.out, "%d. %s - %s\n", i+1, item.Name, item.Description)
	}
	fmt.Fprintf(a.out, "%d. Back to Main Menu\n", len(items)+1)
	a.style.PrintSeparator()

	choice := a.menuChoice(1, len(items)+1)
	if choice >= 1 && choice <= len(items) {
		process(items[choice-1])
	}
}

func (a *App) processPurchase(item entities.CatalogItem) {
	a.style.PrintSectionTitle(fmt.Sprintf("PURCHASE %s", strings.ToUpper(item.Name)))
	fmt.Fprintf(a.out, "Service: %s\n", item.Description)

	amount, ok := a.promptAmount(fmt.Sprintf("Enter amount for %s: R", item.Name))
	if !ok {
		return
	}

	receipt, err := a.session.Purchase(item.Name, amount)
	if err != nil {
		a.HandleError("purchase", err)
		return
	}
	a.style.PrintReceipt(item.Name,
		utils.FormatCurrency(receipt.Amount),
		utils.FormatCurrency(receipt.NewBalance),
		receipt.Token,
		receipt.Timestamp.Format(entities.TimeLayout))
}

func (a *App) processPayment(item entities.CatalogItem) {
	a.style.PrintSectionTitle(fmt.Sprintf("PAY %s", strings.ToUpper(item.Name)))
	fmt.Fprintf(a.out, "Bill: %s\n", item.Description)

	amount, ok := a.promptAmount(fmt.Sprintf("Enter payment amount for %s: R", item.Name))
	if !ok {
		return
	}

	receipt, err := a.session.PayBill(item.Name, amount)
	if err != nil {
		a.HandleError("bill payment", err)
		return
	}
	a.style.PrintReceipt(fmt.Sprintf("%s Bill Payment", item.Name),
		utils.FormatCurrency(receipt.Amount),
		utils.FormatCurrency(receipt.NewBalance),
		"",
		receipt.Timestamp.Format(entities.TimeLayout))
}

func (a *App) depositMoney() {
	a.style.PrintSectionTitle("DEPOSIT MONEY")

	amount, ok := a.promptAmount("Enter deposit amount: R")
	if !ok {
		return
	}

	balance, err := a.session.Deposit(amount)
	if err != nil {
		a.HandleError("deposit", err)
		return
	}
	a.style.PrintSuccess(fmt.Sprintf(
		"Deposit successful!\nAmount Deposited: %s\nNew Balance: %s",
		utils.FormatCurrency(amount), utils.FormatCurrency(balance)))
}

func (a *App) withdrawMoney() {
	a.style.PrintSectionTitle("WITHDRAW MONEY")
	fmt.Fprintf(a.out, "Available Balance: %s\n", utils.FormatCurrency(a.session.Balance()))

	amount, ok := a.promptAmount("Enter withdrawal amount: R")
	if !ok {
		return
	}

	balance, err := a.session.Withdraw(amount)
	if err != nil {
		a.HandleError("withdraw", err)
		return
	}
	a.style.PrintSuccess(fmt.Sprintf(
		"Withdrawal successful!\nAmount Withdrawn: %s\nNew Balance: %s",
		utils.FormatCurrency(amount), utils.FormatCurrency(balance)))
}

func (a *App) checkBalance() {
	a.style.PrintSectionTitle("ACCOUNT BALANCE")
	fmt.Fprintf(a.out, "Your current balance is: %s\n", utils.FormatCurrency(a.session.Balance()))
	a.pause()
}

func (a *App) accountInfo() {
	a.style.PrintSectionTitle("ACCOUNT INFORMATION")

	id := a.session.AccountID()
	account, err := a.directory.Get(id)
	if err != nil {
		fmt.Fprintf(a.out, "Account ID: %d\n", id)
		fmt.Fprintf(a.out, "Balance: %s\n", utils.FormatCurrency(a.session.Balance()))
		fmt.Fprintln(a.out, "Status: Registry data missing")
	} else {
		fmt.Fprintf(a.out, "Account ID: %d\n", id)
		fmt.Fprintf(a.out, "Account Name: %s\n", account.Name)
		fmt.Fprintf(a.out, "Created: %s\n", account.Created)
		fmt.Fprintf(a.out, "Current Balance: %s\n", utils.FormatCurrency(a.session.Balance()))
	}
	a.pause()
}

func (a *App) transactionHistory() {
	a.style.PrintSectionTitle("TRANSACTION HISTORY")
	a.style.PrintHistory(a.session.History(historyDisplayLimit))
	a.pause()
}

func (a *App) logout() {
	if a.session == nil {
		return
	}
	a.session.Close()
	a.session = nil
	a.style.PrintSuccess("Successfully logged out!")
}

func (a *App) confirmExit() {
	a.style.PrintSectionTitle("EXIT CONFIRMATION")

	if a.confirm("Are you sure you want to exit? (y/N): ") {
		a.shutdown()
	} else {
		fmt.Fprintln(a.out, "Returning to main menu...")
	}
}

func (a *App) shutdown() {
	if a.session != nil {
		a.session.Close()
		a.session = nil
	}
	a.style.PrintHeader("GOODBYE")
	fmt.Fprintln(a.out, "Thank you for using JM TSIE Billing System!")
	fmt.Fprintln(a.out, "All account data has been saved successfully.")
	fmt.Fprintln(a.out, "Have a great day!")
	a.style.PrintSeparator()
	a.running = false
}

// prompt prints a prompt and reads one line. EOF is treated as an exit
// request so piped input terminates cleanly.
func (a *App) prompt(text string) string {
	fmt.Fprint(a.out, text)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		log.WithError(err).Debug("Input stream closed")
		a.shutdown()
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}

// promptAmount reads and validates a monetary amount, printing the rejection
// reason on failure.
func (a *App) promptAmount(text string) (amount decimal.Decimal, ok bool) {
	input := a.prompt(text)
	if !a.running {
		return decimal.Zero, false
	}
	parsed, err := services.ParseAmount(input)
	if err != nil {
		a.HandleError("parse amount", err)
		return decimal.Zero, false
	}
	if !parsed.IsPositive() {
		a.style.PrintError("Amount must be greater than zero!")
		return decimal.Zero, false
	}
	return parsed, true
}

// menuChoice reads a numbered selection in [min, max]; 0 means invalid input.
func (a *App) menuChoice(min, max int) int {
	input := a.prompt(fmt.Sprintf("Select option (%d-%d): ", min, max))
	if !a.running {
		return 0
	}
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		a.style.PrintError("Please enter a valid number!")
		return 0
	}
	if choice < min || choice > max {
		a.style.PrintError(fmt.Sprintf("Please select a number between %d and %d!", min, max))
		return 0
	}
	a.style.PrintSeparator()
	return choice
}

// confirm reads a y/N answer; only "y" and "yes" (case-insensitive) count.
func (a *App) confirm(text string) bool {
	answer := strings.ToLower(strings.TrimSpace(a.prompt(text)))
	return answer == "y" || answer == "yes"
}

func (a *App) pause() {
	a.prompt("\nPress Enter to continue...")
}

func (a *App) accountName(id int64) string {
	if account, err := a.directory.Get(id); err == nil {
		return account.Name
	}
	return fmt.Sprintf("Account %d", id)
}

func sortedKeys(accounts map[string]*entities.Account) []string {
	keys := lo.Keys(accounts)
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.ParseInt(keys[i], 10, 64)
		b, _ := strconv.ParseInt(keys[j], 10, 64)
		return a < b
	})
	return keys
}
