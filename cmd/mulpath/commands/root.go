// Package commands implements the CLI commands for mulpath.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/mulpath/internal/app"
	"go.trai.ch/mulpath/internal/build"
	"go.trai.ch/mulpath/internal/core/domain"
)

// skipOpen marks commands that run without probing a client directory.
const skipOpen = "mulpath/skip-open"

// CLI represents the command line interface for mulpath.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	flagHook func(GlobalFlags)
}

// GlobalFlags holds the persistent flags that configure output rather than commands.
type GlobalFlags struct {
	JSON     bool
	Verbose  bool
	Progress bool
}

// Application represents the application logic interface.
type Application interface {
	Open(opts app.OpenOptions) error
	Root() string
	Locate(name string) (string, error)
	Entries() []domain.CatalogEntry
	Verify(ctx context.Context, kinds []string, opts app.VerifyOptions) ([]domain.Verification, error)
	Seal(kinds []string, hashDir string) error
	MapVariants() ([]domain.MapVariant, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mulpath",
		Short:         "Locate and verify Ultima Online client data files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to "+domain.ConfigFileName+" or a directory to search from")
	flags.StringP("root", "r", "", "Client installation directory")
	flags.Bool("json", false, "Log in JSON format")
	flags.BoolP("verbose", "v", false, "Log debug messages")
	flags.Bool("progress", false, "Render verification progress to stderr")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRunE = c.open

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newSealCmd())
	rootCmd.AddCommand(c.newVariantCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) open(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	if c.flagHook != nil {
		var g GlobalFlags
		g.JSON, _ = flags.GetBool("json")
		g.Verbose, _ = flags.GetBool("verbose")
		g.Progress, _ = flags.GetBool("progress")
		c.flagHook(g)
	}

	if _, ok := cmd.Annotations[skipOpen]; ok || cmd.Name() == "help" {
		return nil
	}

	configPath, _ := flags.GetString("config")
	root, _ := flags.GetString("root")

	return c.app.Open(app.OpenOptions{
		ConfigPath: configPath,
		Root:       root,
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetFlagHook registers fn to receive the global flags before any command runs.
func (c *CLI) SetFlagHook(fn func(GlobalFlags)) {
	c.flagHook = fn
}
