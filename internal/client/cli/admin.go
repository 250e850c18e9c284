package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/akarpovs/waygate/internal/client/models"
	"github.com/akarpovs/waygate/internal/client/nav"
)

// Accounts bulk-creates accounts from interactively entered lines of the
// form "username password role". Per-line failures are reported without
// aborting the rest of the batch.
func (a *App) Accounts(ctx context.Context) error {
	if d := a.orch.OpenAdmin(ctx); d.Kind == nav.KindRedirect {
		printRedirect(d)
		return nil
	}

	lines, err := GetBatchLines(a.reader, "Enter accounts as: username password role", os.Stdout)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		fmt.Println("Nothing to create.")
		return nil
	}

	accounts := make([]models.Account, 0, len(lines))
	for _, line := range lines {
		parts := strings.Fields(line)
		if len(parts) != 3 {
			fmt.Printf("Skipping malformed line: %q\n", line)
			continue
		}
		accounts = append(accounts, models.Account{
			Username: parts[0],
			Password: parts[1],
			Role:     parts[2],
		})
	}
	if len(accounts) == 0 {
		fmt.Println("Nothing to create.")
		return nil
	}

	created, errs, err := a.apiClient.CreateAccounts(ctx, accounts)
	if err != nil {
		log.Printf("error creating accounts: %s", err.Error())
		return err
	}

	fmt.Printf("Created %d account(s)\n", created)
	for _, e := range errs {
		fmt.Println(" -", e)
	}
	return nil
}

// AddWaypoint uploads a new waypoint: order index and title are prompted
// one line each, the content body is entered as multiline text.
func (a *App) AddWaypoint(ctx context.Context) error {
	if d := a.orch.OpenAdmin(ctx); d.Kind == nav.KindRedirect {
		printRedirect(d)
		return nil
	}

	orderStr, err := GetSimpleText(a.reader, "Enter order index", os.Stdout)
	if err != nil {
		return err
	}
	orderIndex, err := strconv.ParseInt(orderStr, 10, 64)
	if err != nil {
		fmt.Println("Order index must be a number.")
		return err
	}

	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	content, err := GetMultiline(a.reader, "Enter content", os.Stdout)
	if err != nil {
		return err
	}

	w, err := a.apiClient.CreateWaypoint(ctx, orderIndex, title, []byte(content))
	if err != nil {
		log.Printf("error creating waypoint: %s", err.Error())
		return err
	}

	fmt.Printf("Created waypoint %d: %s\n", w.ID, w.Title)
	return nil
}
