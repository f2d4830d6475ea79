package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphexport/internal/config"
	"github.com/matzehuels/graphexport/pkg/buildinfo"
	"github.com/matzehuels/graphexport/pkg/cache"
	"github.com/matzehuels/graphexport/pkg/observability"
	"github.com/matzehuels/graphexport/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "graphexport"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configFile string
	verbose    bool
	cfg        config.Config
}

// New creates a new CLI instance whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Defaults(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	buildinfo.Resolve()

	root := &cobra.Command{
		Use:   appName,
		Short: "graphexport exports composite graphs of places to text formats",
		Long: `graphexport reads graph descriptions (cities, industrial zones and stadiums
grouped into nested graphs) and exports them as XML-style text, JSON, YAML,
Graphviz DOT or SVG.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default: ./graphexport.yaml or $XDG_CONFIG_HOME/graphexport/graphexport.yaml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.exportCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.formatsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads configuration and wires logging before any command runs.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	v, err := config.New(c.configFile)
	if err != nil {
		return err
	}
	if err := config.Bind(v, cmd.Flags(), "formats", "max_depth", "detailed", "verbose"); err != nil {
		return err
	}
	cfg, err := config.Decode(v)
	if err != nil {
		return err
	}
	c.cfg = cfg

	if cfg.Verbose {
		c.SetLogLevel(LogDebug)
	}
	if used := v.ConfigFileUsed(); used != "" {
		c.Logger.Debug("loaded config", "file", used)
	}

	hooks := &logHooks{logger: c.Logger}
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	return nil
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	var store cache.Cache = cache.NewNullCache()
	if c.cfg.Cache.Enabled {
		store = cache.NewMemoryCache(c.cfg.Cache.TTL, cache.DefaultCleanupInterval)
	}
	return pipeline.NewRunner(store, nil, c.Logger)
}
