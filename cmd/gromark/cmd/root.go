package cmd

import (
	"github.com/spf13/cobra"

	"github.com/corey/gromark/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "gromark",
	Short: "Gromark cipher workbench",
	Long: "Encrypt, decrypt and brute-force Gromark-style ciphers: a keyword-mixed\n" +
		"alphabet shifted by a lagged-Fibonacci digit keystream.",
	SilenceUsage: true,
}

// Persistent flags shared by every command that opens the app.
var (
	dataDirFlag   string
	logFormatFlag string
	logLevelFlag  string
)

// newApp wires a full App from the persistent flags. Callers own Close.
func newApp() (*app.App, error) {
	return app.New(app.Config{
		DataDir:   dataDirFlag,
		LogFormat: logFormatFlag,
		LogLevel:  logLevelFlag,
	})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Run store directory (default $GROMARK_DATA_DIR or ~/.gromark)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "console", "Log output: console or json")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level override: debug, info, warn, error")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	rootCmd.AddCommand(alphabetCmd)
	rootCmd.AddCommand(keystreamCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(crackCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(initCmd)
}
