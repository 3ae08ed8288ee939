/*
Copyright © 2026 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnlex/internal/iofs"
	"github.com/gnames/gnlex/internal/iologger"
	app "github.com/gnames/gnlex/pkg"
	"github.com/gnames/gnlex/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = getRootCmd()

func getRootCmd() *cobra.Command {
	res := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnlex",
		Short:   "Manage the lexicon of a constructed language",
		Long: `gnlex keeps the lexicon of a constructed language: headwords with
their translations, definitions, word types, classes, inflected forms and
pronunciations.

Entries are checked against lexicon rules (unique headwords, mandatory
translations, word type patterns) and can be searched, suggested and
summarized in corpus statistics.

Configuration lives in ~/.config/gnlex/config.yaml, the grammar of the
language (word types, inflection and pronunciation rules) in
~/.config/gnlex/grammar.yaml. The lexicon is saved to SQLite by default,
PostgreSQL is also supported.`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnlex version" prefix
	res.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	res.Flags().BoolP("version", "V", false, "version for gnlex")

	pf := res.PersistentFlags()
	pf.StringP("backend", "b", "", "storage backend: sqlite or postgres")
	pf.String("sqlite-path", "", "path to the sqlite lexicon file")
	pf.IntP("jobs", "j", 0, "number of workers for statistics")
	pf.BoolP("ignore-case", "i", false, "ignore case in search")

	res.AddCommand(
		getAddCmd(),
		getUpdateCmd(),
		getDeleteCmd(),
		getShowCmd(),
		getSearchCmd(),
		getSuggestCmd(),
		getCheckCmd(),
		getReportCmd(),
		getSweepCmd(),
		getImportCmd(),
		getExportCmd(),
		getRecalcCmd(),
	)
	return res
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = iofs.EnsureGrammarFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	opts = append(opts, flagOptions(cmd)...)
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"backend", cfg.Storage.Backend,
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// Creates log file in the proper location now that we know HomeDir.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNLEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Lexicon rules
	v.BindEnv("lexicon.type_mandatory", "GNLEX_LEXICON_TYPE_MANDATORY")
	v.BindEnv("lexicon.translation_mandatory", "GNLEX_LEXICON_TRANSLATION_MANDATORY")
	v.BindEnv("lexicon.headword_unique", "GNLEX_LEXICON_HEADWORD_UNIQUE")
	v.BindEnv("lexicon.translation_unique", "GNLEX_LEXICON_TRANSLATION_UNIQUE")
	v.BindEnv("lexicon.ignore_case", "GNLEX_LEXICON_IGNORE_CASE")
	v.BindEnv("lexicon.alphabet", "GNLEX_LEXICON_ALPHABET")
	v.BindEnv("lexicon.local_order", "GNLEX_LEXICON_LOCAL_ORDER")

	// Storage configuration
	v.BindEnv("storage.backend", "GNLEX_STORAGE_BACKEND")
	v.BindEnv("storage.sqlite_path", "GNLEX_STORAGE_SQLITE_PATH")

	// Database configuration
	v.BindEnv("database.host", "GNLEX_DATABASE_HOST")
	v.BindEnv("database.port", "GNLEX_DATABASE_PORT")
	v.BindEnv("database.user", "GNLEX_DATABASE_USER")
	v.BindEnv("database.password", "GNLEX_DATABASE_PASSWORD")
	v.BindEnv("database.database", "GNLEX_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "GNLEX_DATABASE_SSL_MODE")
	v.BindEnv("database.batch_size", "GNLEX_DATABASE_BATCH_SIZE")

	// Log configuration
	v.BindEnv("log.level", "GNLEX_LOG_LEVEL")
	v.BindEnv("log.format", "GNLEX_LOG_FORMAT")
	v.BindEnv("log.destination", "GNLEX_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "GNLEX_JOBS_NUMBER")

	v.AutomaticEnv()
}
