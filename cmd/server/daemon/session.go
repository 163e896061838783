package daemon

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"payzee/internal/session"
	id "payzee/pkg/domain"
	"payzee/pkg/requestcontext"
	"payzee/pkg/secrets"
)

type sessionOutput struct {
	Cookie    string            `json:"cookie"`
	Token     string            `json:"token"`
	UserID    string            `json:"user_id"`
	UserType  string            `json:"user_type"`
	ExpiresIn string            `json:"expires_in"`
	Usage     map[string]string `json:"usage"`
}

// installSession adds a command that mints a session cookie with the
// configured secret, for calling the API by hand against a dev server.
func (a *App) installSession() {
	var (
		userID   string
		userType string
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Print a signed session cookie for local testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.config.IsProduction() {
				return fmt.Errorf("refusing to mint sessions for a production configuration")
			}
			return a.mintSession(cmd.OutOrStdout(), userID, requestcontext.UserType(userType), asJSON)
		},
	}
	cmd.Flags().StringVar(&userID, "user-id", "", "government user id (UUID); generated when empty")
	cmd.Flags().StringVar(&userType, "user-type", string(requestcontext.UserTypeGovernment), "government, citizen or vendor")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	a.cmd.AddCommand(cmd)
}

func (a *App) mintSession(w io.Writer, userID string, userType requestcontext.UserType, asJSON bool) error {
	if userID == "" {
		userID = uuid.NewString()
	}
	govtID, err := id.ParseGovernmentID(userID)
	if err != nil {
		return fmt.Errorf("invalid --user-id: %w", err)
	}

	codec, err := session.NewCodec(a.config.Session.Secret, a.config.Session.TTL, a.config.Session.SecureCookie)
	if err != nil {
		return err
	}
	token, err := codec.Issue(requestcontext.Identity{GovernmentID: govtID, UserType: userType}, time.Now())
	if err != nil {
		return err
	}

	cookie := session.CookieName + "=" + token
	if !asJSON {
		_, err = fmt.Fprintf(w, "%s\n\nUsage:\n  curl -b '%s' http://localhost%s/dashboard\n", cookie, cookie, a.config.Addr)
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sessionOutput{
		Cookie:    cookie,
		Token:     token,
		UserID:    govtID.String(),
		UserType:  string(userType),
		ExpiresIn: codec.TTL().String(),
		Usage: map[string]string{
			"curl": fmt.Sprintf("curl -b '%s' http://localhost%s/dashboard", cookie, a.config.Addr),
		},
	})
}

func (a *App) installSecret() {
	a.cmd.AddCommand(&cobra.Command{
		Use:   "secret",
		Short: "Print a random value suitable for PAYZEE_SESSION_SECRET",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cmd.SilenceUsage = true
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := secrets.Generate()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), secret)
			return err
		},
	})
}
