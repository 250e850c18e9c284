package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/akarpovs/waygate/internal/common"
)

// Login prompts for credentials and signs in against the server. On
// success the session is cached locally so the next start stays signed in.
func (a *App) Login(ctx context.Context) error {

	userName, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		log.Printf("error reading username: %s", err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error reading password: %s", err.Error())
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.identity.SignIn(ctx, userName, password); err != nil {
		log.Printf("login failed: %s", err.Error())
		return err
	}

	a.userName = userName
	a.signedIn = true
	fmt.Printf("Signed in as %s\n", userName)
	return nil
}

// Logout terminates the session on the server, clears the local cache,
// and lands on the login screen.
func (a *App) Logout(ctx context.Context) error {
	a.orch.SignOut(ctx)
	a.userName = ""
	a.signedIn = false
	fmt.Println("Signed out")
	return nil
}

// Whoami prints the server-side view of the current profile.
func (a *App) Whoami(ctx context.Context) error {
	profile, err := a.apiClient.GetProfile(ctx)
	if err != nil {
		log.Printf("error fetching profile: %s", err.Error())
		return err
	}
	fmt.Printf("user: %s role: %s\n", profile.ID, profile.Role)
	return nil
}
