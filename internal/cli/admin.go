package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	adminService "github.com/ridloal/plant-catalog/internal/admin/service"
	"github.com/ridloal/plant-catalog/internal/platform/config"
)

const (
	keyFlag     = "key"
	keyHashFlag = "key-hash"
	secretFlag  = "secret"
	ttlFlag     = "ttl"
)

var errAdminKeyRequired = errors.New("an admin key is required (--key or ADMIN_KEY)")

func newHashKeyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-key",
		Short: "Print a bcrypt hash of the admin key for ADMIN_KEY_HASH",
		Args:  cobra.NoArgs,
		RunE:  hashKeyCommand,
	}
	register(cmd, map[string]cobraflags.Flag{
		keyFlag: &cobraflags.StringFlag{
			Name:  keyFlag,
			Usage: "Admin key to hash",
		},
	}, map[string]string{keyFlag: "ADMIN_KEY"})
	return cmd
}

func hashKeyCommand(cmd *cobra.Command, _ []string) error {
	v, err := settings(cmd)
	if err != nil {
		return err
	}
	key := v.GetString(keyFlag)
	if key == "" {
		return errAdminKeyRequired
	}

	hashed, err := adminService.HashAdminKey(key)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hashed)
	return nil
}

func newTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin token for scripted plant creation",
		Long: `Exchange the admin key for a signed admin token, exactly as
POST /api/admin/session does, and print it. Send it as
"Authorization: Bearer <token>" when calling POST /api/plants.`,
		Args: cobra.NoArgs,
		RunE: tokenCommand,
	}
	register(cmd, map[string]cobraflags.Flag{
		keyFlag: &cobraflags.StringFlag{
			Name:  keyFlag,
			Usage: "Admin key",
		},
		keyHashFlag: &cobraflags.StringFlag{
			Name:  keyHashFlag,
			Usage: "bcrypt hash the key is checked against (defaults to hashing --key)",
		},
		secretFlag: &cobraflags.StringFlag{
			Name:  secretFlag,
			Usage: "HMAC secret shared with the catalog service",
		},
		ttlFlag: &cobraflags.StringFlag{
			Name:  ttlFlag,
			Value: config.DefaultAdminTokenTTL.String(),
			Usage: "Token lifetime, e.g. 15m or a number of minutes",
		},
	}, map[string]string{
		keyFlag:     "ADMIN_KEY",
		keyHashFlag: "ADMIN_KEY_HASH",
		secretFlag:  "ADMIN_TOKEN_SECRET",
		ttlFlag:     "ADMIN_TOKEN_TTL",
	})
	return cmd
}

func tokenCommand(cmd *cobra.Command, _ []string) error {
	v, err := settings(cmd)
	if err != nil {
		return err
	}
	key := v.GetString(keyFlag)
	if key == "" {
		return errAdminKeyRequired
	}
	ttl, err := config.ParseDuration(v.GetString(ttlFlag))
	if err != nil {
		return fmt.Errorf("invalid --%s: %w", ttlFlag, err)
	}

	tokens, err := adminService.NewTokenService(config.AdminConfig{
		Key:         key,
		KeyHash:     v.GetString(keyHashFlag),
		TokenSecret: v.GetString(secretFlag),
		TokenTTL:    ttl,
	})
	if err != nil {
		return err
	}
	session, err := tokens.OpenSession(key)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, session.Token)
	fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", session.ExpiresAt.UTC().Format(time.RFC3339))
	return nil
}
