package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"biller/config"
	"biller/domain/services"
	"biller/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, script string) (*App, *bytes.Buffer, *services.Directory) {
	t.Helper()
	cfg := config.NewTestConfig(t.TempDir())
	directory := services.NewDirectory(storage.NewFileStore(cfg), cfg.DefaultBalance)
	out := &bytes.Buffer{}
	app := NewApp(cfg, directory, strings.NewReader(script), out)
	return app, out, directory
}

func TestApp_FullSession(t *testing.T) {
	// Create an account with the default balance, log in, deposit, withdraw,
	// purchase electricity, log out, exit.
	script := strings.Join([]string{
		"1",           // account menu: create
		"Test User",   // name
		"",            // initial balance: default
		"y",           // login now
		"3",           // main menu: deposit
		"500",         // amount
		"4",           // main menu: withdraw
		"200",         // amount
		"1",           // main menu: purchase services
		"1",           // electricity
		"50",          // amount
		"8",           // logout
		"4",           // account menu: exit
		"y",           // confirm
	}, "\n") + "\n"

	app, out, directory := newTestApp(t, script)
	require.NoError(t, app.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Account created successfully!")
	assert.Contains(t, output, "Deposit successful!")
	assert.Contains(t, output, "Withdrawal successful!")
	assert.Contains(t, output, "TRANSACTION COMPLETED")
	assert.Contains(t, output, "Reference Token:")
	assert.Contains(t, output, "Successfully logged out!")
	assert.Contains(t, output, "GOODBYE")

	// 1,000,000 + 500 - 200 - 50
	balance := directory.Store().LoadBalance(1, decimal.Zero)
	assert.Equal(t, "1000250.00", balance.StringFixed(2))

	// Logout synced the registry cache.
	account, err := directory.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "1000250.00", account.Balance.StringFixed(2))
}

func TestApp_WithdrawBeyondBalanceRejected(t *testing.T) {
	script := strings.Join([]string{
		"1",      // create
		"Broke User",
		"50",     // initial balance
		"y",      // login
		"4",      // withdraw
		"100",    // too much
		"9",      // exit
		"y",      // confirm
	}, "\n") + "\n"

	app, out, directory := newTestApp(t, script)
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "Insufficient funds. Available: R50.00")

	balance := directory.Store().LoadBalance(1, decimal.Zero)
	assert.Equal(t, "50.00", balance.StringFixed(2))
}

func TestApp_InvalidMenuInput(t *testing.T) {
	script := strings.Join([]string{
		"abc", // not a number
		"9",   // out of range
		"4",   // exit
		"y",
	}, "\n") + "\n"

	app, out, _ := newTestApp(t, script)
	require.NoError(t, app.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Please enter a valid number!")
	assert.Contains(t, output, "Please select a number between 1 and 4!")
}

func TestApp_ExitDeclinedReturnsToMenu(t *testing.T) {
	script := strings.Join([]string{
		"4", // exit
		"n", // decline
		"4", // exit again
		"y", // confirm
	}, "\n") + "\n"

	app, out, _ := newTestApp(t, script)
	require.NoError(t, app.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Returning to main menu...")
	assert.Contains(t, output, "GOODBYE")
}

func TestApp_ExitDeclinedDoesNotSyncRegistry(t *testing.T) {
	app, _, directory := newTestApp(t, "n\n")

	id, account, err := directory.Create("Test User", decimal.NewFromInt(100))
	require.NoError(t, err)
	app.login(id, account.Name)
	_, err = app.session.Deposit(decimal.NewFromInt(50))
	require.NoError(t, err)

	app.confirmExit()

	// The session stays open and the registry cache is untouched until a
	// logout or confirmed exit closes it.
	require.NotNil(t, app.session)
	assert.Equal(t, "150.00", app.session.Balance().StringFixed(2))

	cached, err := directory.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "100.00", cached.Balance.StringFixed(2))
}

func TestApp_SelectMissingAccount(t *testing.T) {
	script := strings.Join([]string{
		"1", // create so the select menu is reachable
		"Test User",
		"",
		"n", // do not login
		"2", // select
		"42",
		"4", // exit
		"y",
	}, "\n") + "\n"

	app, out, _ := newTestApp(t, script)
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "Account ID not found!")
}

func TestApp_EOFTerminatesCleanly(t *testing.T) {
	app, out, _ := newTestApp(t, "1\n") // stream ends mid-create

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "GOODBYE")
}

func TestApp_CancelledContextShutsDown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	app, out, _ := newTestApp(t, "")
	require.NoError(t, app.Run(ctx))
	assert.Contains(t, out.String(), "GOODBYE")
}
