package cli

import (
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand assembles catalogctl and its subcommands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "Operator tooling for the plant catalog",
		Long: `Operator tooling for the plant catalog.

Every flag falls back to the environment variable the services read, so the
same .env file drives both.

Examples:
  catalogctl migrate --dsn postgres://localhost/plant_db
  catalogctl seed --storage mongo
  catalogctl hash-key --key s3cret
  catalogctl token --ttl 5m`,
		SilenceUsage: true,
	}

	root.AddCommand(newMigrateCommand())
	root.AddCommand(newSeedCommand())
	root.AddCommand(newHashKeyCommand())
	root.AddCommand(newTokenCommand())
	return root
}

// register adds flags to cmd and records which environment variable backs
// each one.
func register(cmd *cobra.Command, flags map[string]cobraflags.Flag, env map[string]string) {
	cobraflags.RegisterMap(cmd, flags)
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	for name, envVar := range env {
		cmd.Annotations[name] = envVar
	}
}

// settings resolves the flags of cmd: an explicitly set flag wins, then its
// environment variable, then the flag default.
func settings(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	for name, envVar := range cmd.Annotations {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(name, flag); err != nil {
			return nil, fmt.Errorf("could not bind flag %s: %w", name, err)
		}
		if err := v.BindEnv(name, envVar); err != nil {
			return nil, fmt.Errorf("could not bind %s to %s: %w", name, envVar, err)
		}
	}
	return v, nil
}
