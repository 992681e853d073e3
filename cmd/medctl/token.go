package main

import (
	"fmt"
	"os"

	"codeberg.org/medlit/server/internal/auth"
	"github.com/spf13/cobra"
)

var tokenIdentity auth.Identity

// tokenCmd mints an ID token the local provider accepts at POST /api/v1/auth/session
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a local-mode ID token for testing",
	Long: `Mint an ID token signed with JWT_SECRET.

Exchange it for a session cookie with:
  curl -c cookies.txt -X POST $BASE_URL/api/v1/auth/session \
    -H 'Content-Type: application/json' -d '{"id_token":"<token>"}'`,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenIdentity.UID, "uid", "test-user-123", "user id")
	tokenCmd.Flags().StringVar(&tokenIdentity.Email, "email", "test@medlit.dev", "email")
	tokenCmd.Flags().StringVar(&tokenIdentity.DisplayName, "name", "Test User", "display name")
}

func runToken(cmd *cobra.Command, _ []string) error {
	provider, err := auth.NewLocalProvider(os.Getenv("JWT_SECRET"), nil)
	if err != nil {
		return err
	}

	identity := tokenIdentity
	identity.EmailVerified = true

	token, err := provider.IssueIDToken(identity)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
