package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the interactive shell. It blocks until the user exits or the
// context is cancelled.
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to Waygate CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	runREPL(ctx, a, a.getStatus, scanner)
}
