// Package shell owns the console session: menu rendering, the prompt loop,
// and command dispatch into the transaction service.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"vending-system/internal/repository"
	"vending-system/internal/service"
	"vending-system/pkg/change"
	apperrors "vending-system/pkg/errors"
	"vending-system/pkg/money"
)

// Shell drives one vending session over a line-based console
type Shell struct {
	inventory repository.InventoryRepository
	svc       *service.TransactionService
	in        *bufio.Scanner
	out       io.Writer
}

// New wires the shell to a session and its I/O streams
func New(inventory repository.InventoryRepository, svc *service.TransactionService, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		inventory: inventory,
		svc:       svc,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run loops until the user checks out or input ends. The session state
// machine lives here: once change is returned the session is finalized and
// the loop never re-enters.
func (sh *Shell) Run(ctx context.Context) error {
	for {
		sh.printMenu(ctx)
		fmt.Fprint(sh.out, "Enter command or code: ")
		if !sh.in.Scan() {
			return sh.in.Err()
		}
		input := strings.TrimSpace(sh.in.Text())
		command := strings.ToUpper(input)

		switch {
		case command == "QUIT" || command == "Q" || command == "EXIT":
			sh.returnChange(ctx)
			return nil
		case command == "HELP" || command == "H":
			sh.printHelp()
		case command == "ADD":
			sh.handleAddMoney(ctx)
		case input == "":
			continue
		default:
			sh.handlePurchase(ctx, input)
		}
	}
}

func (sh *Shell) printHeader() {
	fmt.Fprintln(sh.out, "=========================================")
	fmt.Fprintln(sh.out, "           VENDING MACHINE 3000          ")
	fmt.Fprintln(sh.out, "=========================================")
}

func (sh *Shell) printMenu(ctx context.Context) {
	sh.printHeader()
	fmt.Fprintf(sh.out, "Your balance: %s\n\n", money.Format(sh.svc.Balance()))

	for _, group := range sh.inventory.Categories(ctx) {
		fmt.Fprintf(sh.out, "[%s]\n", group.Category)
		for _, code := range group.Codes {
			item, err := sh.inventory.Get(ctx, code)
			if err != nil {
				continue
			}
			fmt.Fprintf(sh.out, "  %-3s  %-20s  %-8s  Stock: %d\n",
				item.Code, item.Name, money.Format(item.Price), item.Stock)
		}
		fmt.Fprintln(sh.out)
	}

	fmt.Fprintln(sh.out, "Commands:")
	fmt.Fprintln(sh.out, "  code (e.g., A1)   -> buy item")
	fmt.Fprintln(sh.out, "  add               -> insert money")
	fmt.Fprintln(sh.out, "  help              -> show commands")
	fmt.Fprintln(sh.out, "  quit              -> finish and get change")
	fmt.Fprintln(sh.out, "-----------------------------------------")
}

func (sh *Shell) printHelp() {
	fmt.Fprintln(sh.out, "HELP")
	fmt.Fprintln(sh.out, " - Enter an item code (e.g., A1) to buy an item if you have enough balance.")
	fmt.Fprintln(sh.out, " - Type 'add' to insert money (e.g., 1, 1.50, £2.00).")
	fmt.Fprintln(sh.out, " - Type 'quit' to finish your session and receive change.")
}

func (sh *Shell) handleAddMoney(ctx context.Context) {
	fmt.Fprint(sh.out, "Enter amount to add (e.g., 1, 1.50, £2.00): ")
	if !sh.in.Scan() {
		return
	}

	res, err := sh.svc.AddFunds(ctx, sh.in.Text())
	if err != nil {
		fmt.Fprintln(sh.out, "Invalid amount. Please try again.")
		return
	}
	fmt.Fprintf(sh.out, "Added %s. New balance: %s\n",
		money.Format(res.Added), money.Format(res.Balance))
}

func (sh *Shell) handlePurchase(ctx context.Context, rawCode string) {
	receipt, err := sh.svc.Purchase(ctx, rawCode)
	if err != nil {
		var oos *apperrors.OutOfStockError
		var insufficient *apperrors.InsufficientFundsError
		switch {
		case errors.Is(err, apperrors.ErrUnknownCode):
			fmt.Fprintln(sh.out, "Unknown code. Please check and try again.")
		case errors.As(err, &oos):
			fmt.Fprintf(sh.out, "Sorry, %s is out of stock.\n", oos.Name)
		case errors.As(err, &insufficient):
			fmt.Fprintf(sh.out, "Insufficient funds. You need %s more.\n",
				money.Format(insufficient.Shortfall))
		case errors.Is(err, apperrors.ErrStockConflict):
			// Already logged by the service; surface only the outcome.
			fmt.Fprintln(sh.out, "Unexpected stock error. Purchase cancelled.")
		default:
			zap.L().Error("purchase failed", zap.Error(err))
			fmt.Fprintln(sh.out, "Purchase failed. Please try again.")
		}
		return
	}

	fmt.Fprintf(sh.out, "Dispensing: %s (%s) ... Enjoy!\n", receipt.Item.Name, receipt.Item.Code)
	fmt.Fprintf(sh.out, "Remaining balance: %s\n", money.Format(receipt.Balance))
	if s := receipt.Suggestion; s != nil {
		fmt.Fprintf(sh.out, "You might also like: %s [%s] for %s\n",
			s.Name, s.Code, money.Format(s.Price))
	}
}

func (sh *Shell) returnChange(ctx context.Context) {
	receipt := sh.svc.Finalize(ctx)
	fmt.Fprintf(sh.out, "\nReturning change: %s\n", money.Format(receipt.Amount))
	if len(receipt.Breakdown) == 0 {
		fmt.Fprintln(sh.out, "No change.")
	} else {
		fmt.Fprintln(sh.out, "Change breakdown:")
		for _, unit := range receipt.Breakdown {
			fmt.Fprintf(sh.out, "  %s x %d\n", change.Label(unit.Denomination), unit.Count)
		}
	}
	fmt.Fprintln(sh.out, "Thank you for using VENDING MACHINE 3000!")
}
