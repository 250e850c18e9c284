package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/akarpovs/waygate/internal/client/models"
	"github.com/akarpovs/waygate/internal/client/nav"
)

// Intro opens the intro screen for students.
func (a *App) Intro(ctx context.Context) error {
	d := a.orch.OpenIntro(ctx)
	if d.Kind == nav.KindRedirect {
		printRedirect(d)
		return nil
	}
	fmt.Println("Welcome to Waygate! Type 'list' to see the waypoints.")
	return nil
}

// List opens the waypoint list screen and prints the waypoints in play
// order.
func (a *App) List(ctx context.Context) error {
	d := a.orch.OpenWaypointList(ctx)
	if d.Kind == nav.KindRedirect {
		printRedirect(d)
		return nil
	}

	if len(d.Waypoints) == 0 {
		fmt.Println("No waypoints yet.")
		return nil
	}

	for _, w := range d.Waypoints {
		fmt.Printf("%3d. [%d] %s\n", w.OrderIndex, w.ID, w.Title)
	}
	return nil
}

// Play opens the game screen for one waypoint and prints its content.
func (a *App) Play(ctx context.Context, waypointID int64) error {
	d := a.orch.OpenGame(ctx, waypointID)
	if d.Kind == nav.KindRedirect {
		printRedirect(d)
		return nil
	}

	content, err := a.waypoints.FetchContent(ctx, d.Waypoint.ContentURL)
	if err != nil {
		log.Printf("error downloading waypoint content: %s", err.Error())
		return err
	}

	fmt.Printf("=== %s ===\n", d.Waypoint.Title)
	fmt.Println(string(content))
	return nil
}

// Report interactively collects a progress delta for one waypoint and
// dispatches it. Empty answers leave the corresponding field unreported.
func (a *App) Report(ctx context.Context, waypointID int64) error {

	var delta models.Delta

	answer, err := GetSimpleText(a.reader, "Completed? (y/n, empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	switch answer {
	case "y", "yes":
		v := true
		delta.Completed = &v
	case "n", "no":
		v := false
		delta.Completed = &v
	}

	if delta.Score, err = askFloat(a.reader, "Score 0..100 (empty to skip)"); err != nil {
		fmt.Println("Score must be a number.")
		return err
	}
	if delta.Mistakes, err = askInt(a.reader, "Mistakes (empty to skip)"); err != nil {
		fmt.Println("Mistakes must be a number.")
		return err
	}
	if delta.Attempts, err = askInt(a.reader, "Attempts (empty to skip)"); err != nil {
		fmt.Println("Attempts must be a number.")
		return err
	}

	if err := a.orch.ReportProgress(ctx, waypointID, delta); err != nil {
		log.Printf("error reporting progress: %s", err.Error())
		return err
	}

	fmt.Println("Progress saved.")
	return nil
}

// Progress prints the stored progress record for one waypoint.
func (a *App) Progress(ctx context.Context, waypointID int64) error {
	rec, err := a.engine.Get(ctx, waypointID)
	if err != nil {
		log.Printf("error fetching progress: %s", err.Error())
		return err
	}

	score := "-"
	if rec.Score != nil {
		score = strconv.FormatFloat(*rec.Score, 'f', -1, 64)
	}
	fmt.Printf("waypoint %d: completed=%v score=%s mistakes=%d attempts=%d\n",
		rec.WaypointID, rec.Completed, score, rec.Mistakes, rec.Attempts)
	return nil
}

func askFloat(reader *bufio.Reader, prompt string) (*float64, error) {
	s, err := GetSimpleText(reader, prompt, os.Stdout)
	if err != nil || s == "" {
		return nil, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func askInt(reader *bufio.Reader, prompt string) (*int64, error) {
	s, err := GetSimpleText(reader, prompt, os.Stdout)
	if err != nil || s == "" {
		return nil, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func printRedirect(d nav.Disposition) {
	switch d.Screen {
	case nav.ScreenWaypointList:
		fmt.Println("Waypoint not found. Type 'list' to see the available ones.")
	default:
		fmt.Println("Please log in first.")
	}
}
