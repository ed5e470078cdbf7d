package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "TOKENAMOUNT"

// app carries the state shared by all subcommands. It is populated by the
// root command before any subcommand runs.
type app struct {
	v   *viper.Viper
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "tokenamount",
		Short:         "Display and parse exact on-chain token amounts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Config file (YAML, TOML or JSON) providing flag defaults")
	flags.String("log-level", "warn", "Log level (trace, debug, info, warn, error, disabled)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		err := a.loadConfig(cmd)
		if err != nil {
			return err
		}
		a.log, err = newConsoleLogger(cmd.ErrOrStderr(), a.v.GetString("log-level"))
		return err
	}

	cmd.AddCommand(
		newFormatCmd(a),
		newParseCmd(a),
		newChainsCmd(a),
	)
	return cmd
}

// loadConfig binds the flags of the executing command to viper. A flag set on
// the command line wins over the environment, which wins over the config file.
func (a *app) loadConfig(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	file := a.v.GetString("config")
	if file == "" {
		return nil
	}
	a.v.SetConfigFile(file)
	if err := a.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func newConsoleLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
