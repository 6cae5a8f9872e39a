package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shardvault/shardvault/internal/config"
	"github.com/shardvault/shardvault/internal/output"
	"github.com/shardvault/shardvault/pkg/shardvaulterr"
)

// configCmd is the parent command for configuration operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and modify shardvault configuration settings.`,
}

// configInitCmd initializes the configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long: `Create a default configuration file at ~/.shardvault/config.yaml.

If a configuration file already exists, this command will not overwrite it
unless --force is specified.

Example:
  shardvault config init
  shardvault config init --force`,
	RunE: runConfigInit,
}

// configShowCmd shows the current configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the current configuration settings.

Example:
  shardvault config show
  shardvault config show -o json`,
	RunE: runConfigShow,
}

// configGetCmd gets a specific configuration value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Get a configuration value",
	Long: `Get a specific configuration value by its path.

The path uses dot notation to navigate the configuration tree.

Examples:
  shardvault config get split.default_k
  shardvault config get output.default_format
  shardvault config get logging.level`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configSetCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Set a configuration value",
	Long: `Set a specific configuration value by its path.

The path uses dot notation to navigate the configuration tree.
The configuration file will be updated immediately.

Examples:
  shardvault config set split.default_k 3
  shardvault config set output.default_format json
  shardvault config set logging.level debug`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var configForce bool

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite existing configuration")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	configPath := config.Path(cfg.Home)

	if _, err := os.Stat(configPath); err == nil && !configForce {
		return shardvaulterr.Newf(shardvaulterr.KindInvalidInput,
			"configuration already exists at %s. Use --force to overwrite.", configPath)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	defaultCfg := config.Defaults()
	defaultCfg.Home = cfg.Home

	if err := config.Save(defaultCfg, configPath); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	w := cmd.OutOrStdout()
	out(w, "Configuration initialized at %s\n", configPath)
	outln(w)
	outln(w, "Edit this file to configure:")
	outln(w, "  - split.default_k / split.default_n: default threshold parameters")
	outln(w, "  - split.default_encoding: base58check, base64url, words, or bip39frames")
	outln(w, "  - output.default_format: output format (text/json)")
	outln(w, "  - logging.level: log level (off/error/debug)")

	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	format := formatter.Format()

	if format == output.FormatJSON {
		return displayConfigJSON(w, cfg)
	}

	return displayConfigText(w, cfg)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	path := args[0]

	value, err := getConfigValue(cfg, path)
	if err != nil {
		return shardvaulterr.WithDetails(
			shardvaulterr.New(shardvaulterr.KindInvalidInput, "configuration path not found"),
			map[string]string{"path": path},
		)
	}

	w := cmd.OutOrStdout()
	outln(w, value)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path := args[0]
	value := args[1]

	if _, err := getConfigValue(cfg, path); err != nil {
		return shardvaulterr.WithDetails(
			shardvaulterr.New(shardvaulterr.KindInvalidInput, "configuration path not found"),
			map[string]string{"path": path},
		)
	}

	configPath := config.Path(cfg.Home)
	currentCfg, err := config.Load(configPath)
	if err != nil {
		currentCfg = config.Defaults()
	}

	if err := setConfigValue(currentCfg, path, value); err != nil {
		return fmt.Errorf("setting config value: %w", err)
	}

	if err := config.Save(currentCfg, configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	w := cmd.OutOrStdout()
	out(w, "Set %s = %s\n", path, value)

	return nil
}

// getConfigValue retrieves a value from the config using dot notation.
func getConfigValue(c *config.Config, path string) (string, error) {
	parts := strings.Split(path, ".")
	if len(parts) != 2 {
		if len(parts) == 1 && parts[0] == "home" {
			return c.Home, nil
		}
		return "", shardvaulterr.New(shardvaulterr.KindInvalidInput, "unknown configuration key")
	}

	switch parts[0] {
	case "split":
		return getSplitValue(c, parts[1])
	case "crypto":
		return getCryptoValue(c, parts[1])
	case "output":
		return getOutputValue(c, parts[1])
	case "logging":
		return getLoggingValue(c, parts[1])
	default:
		return "", shardvaulterr.New(shardvaulterr.KindInvalidInput, "unknown configuration section")
	}
}

func getSplitValue(c *config.Config, key string) (string, error) {
	switch key {
	case "default_k":
		return strconv.Itoa(c.Split.DefaultK), nil
	case "default_n":
		return strconv.Itoa(c.Split.DefaultN), nil
	case "default_encoding":
		return c.Split.DefaultEncoding, nil
	default:
		return "", shardvaulterr.New(shardvaulterr.KindInvalidInput, "unknown configuration key")
	}
}

func getCryptoValue(c *config.Config, key string) (string, error) {
	switch key {
	case "mem_kib":
		return strconv.FormatUint(uint64(c.Crypto.MemKiB), 10), nil
	case "time":
		return strconv.FormatUint(uint64(c.Crypto.Time), 10), nil
	case "parallelism":
		return strconv.FormatUint(uint64(c.Crypto.Parallelism), 10), nil
	default:
		return "", shardvaulterr.New(shardvaulterr.KindInvalidInput, "unknown configuration key")
	}
}

func getOutputValue(c *config.Config, key string) (string, error) {
	switch key {
	case "default_format":
		return c.Output.DefaultFormat, nil
	case "verbose":
		return strconv.FormatBool(c.Output.Verbose), nil
	case "color":
		return c.Output.Color, nil
	default:
		return "", shardvaulterr.New(shardvaulterr.KindInvalidInput, "unknown configuration key")
	}
}

func getLoggingValue(c *config.Config, key string) (string, error) {
	switch key {
	case "level":
		return c.Logging.Level, nil
	case "file":
		return c.Logging.File, nil
	default:
		return "", shardvaulterr.New(shardvaulterr.KindInvalidInput, "unknown configuration key")
	}
}

// setConfigValue sets a value in the config using dot notation.
func setConfigValue(c *config.Config, path, value string) error {
	parts := strings.Split(path, ".")
	if len(parts) != 2 {
		if len(parts) == 1 && parts[0] == "home" {
			c.Home = value
			return nil
		}
		return shardvaulterr.New(shardvaulterr.KindInvalidInput, "unknown configuration key")
	}

	switch parts[0] {
	case "split":
		return setSplitValue(c, parts[1], value)
	case "crypto":
		return setCryptoValue(c, parts[1], value)
	case "output":
		return setOutputValue(c, parts[1], value)
	case "logging":
		return setLoggingValue(c, parts[1], value)
	default:
		return shardvaulterr.New(shardvaulterr.KindInvalidInput, "unknown configuration section")
	}
}

func setSplitValue(c *config.Config, key, value string) error {
	switch key {
	case "default_k":
		n, err := strconv.Atoi(value)
		if err != nil {
			return shardvaulterr.Wrap(shardvaulterr.KindInvalidInput, err, "default_k must be an integer")
		}
		c.Split.DefaultK = n
		return nil
	case "default_n":
		n, err := strconv.Atoi(value)
		if err != nil {
			return shardvaulterr.Wrap(shardvaulterr.KindInvalidInput, err, "default_n must be an integer")
		}
		c.Split.DefaultN = n
		return nil
	case "default_encoding":
		c.Split.DefaultEncoding = value
		return nil
	default:
		return shardvaulterr.New(shardvaulterr.KindInvalidInput, "unknown configuration key")
	}
}

func setCryptoValue(c *config.Config, key, value string) error {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return shardvaulterr.Wrap(shardvaulterr.KindInvalidInput, err, "value must be a non-negative integer")
	}
	switch key {
	case "mem_kib":
		c.Crypto.MemKiB = uint32(n)
		return nil
	case "time":
		c.Crypto.Time = uint32(n)
		return nil
	case "parallelism":
		c.Crypto.Parallelism = uint32(n)
		return nil
	default:
		return shardvaulterr.New(shardvaulterr.KindInvalidInput, "unknown configuration key")
	}
}

func setOutputValue(c *config.Config, key, value string) error {
	switch key {
	case "default_format":
		if value != "text" && value != "json" && value != "auto" {
			return shardvaulterr.New(shardvaulterr.KindInvalidInput, "value must be text, json, or auto")
		}
		c.Output.DefaultFormat = value
		return nil
	case "verbose":
		c.Output.Verbose = value == "true"
		return nil
	case "color":
		if value != "auto" && value != "always" && value != "never" {
			return shardvaulterr.New(shardvaulterr.KindInvalidInput, "value must be auto, always, or never")
		}
		c.Output.Color = value
		return nil
	default:
		return shardvaulterr.New(shardvaulterr.KindInvalidInput, "unknown configuration key")
	}
}

func setLoggingValue(c *config.Config, key, value string) error {
	switch key {
	case "level":
		validLevels := []string{"off", "error", "debug"}
		for _, l := range validLevels {
			if value == l {
				c.Logging.Level = value
				return nil
			}
		}
		return shardvaulterr.New(shardvaulterr.KindInvalidInput, "value must be off, error, or debug")
	case "file":
		c.Logging.File = value
		return nil
	default:
		return shardvaulterr.New(shardvaulterr.KindInvalidInput, "unknown configuration key")
	}
}

// displayConfigText shows the config in text format.
func displayConfigText(w interface {
	Write(p []byte) (n int, err error)
}, c *config.Config,
) error {
	outln(w, "Configuration:")
	outln(w)
	out(w, "  Home: %s\n", c.Home)
	outln(w)
	outln(w, "  Split:")
	out(w, "    default_k: %d\n", c.Split.DefaultK)
	out(w, "    default_n: %d\n", c.Split.DefaultN)
	out(w, "    default_encoding: %s\n", c.Split.DefaultEncoding)
	outln(w)
	outln(w, "  Crypto:")
	out(w, "    mem_kib: %d\n", c.Crypto.MemKiB)
	out(w, "    time: %d\n", c.Crypto.Time)
	out(w, "    parallelism: %d\n", c.Crypto.Parallelism)
	outln(w)
	outln(w, "  Output:")
	out(w, "    default_format: %s\n", c.Output.DefaultFormat)
	out(w, "    verbose: %t\n", c.Output.Verbose)
	out(w, "    color: %s\n", c.Output.Color)
	outln(w)
	outln(w, "  Logging:")
	out(w, "    level: %s\n", c.Logging.Level)
	out(w, "    file: %s\n", c.Logging.File)

	return nil
}

// displayConfigJSON shows the config in JSON format.
func displayConfigJSON(w interface {
	Write(p []byte) (n int, err error)
}, c *config.Config,
) error {
	type splitJSON struct {
		DefaultK        int    `json:"default_k"`
		DefaultN        int    `json:"default_n"`
		DefaultEncoding string `json:"default_encoding"`
	}
	type cryptoJSON struct {
		MemKiB      uint32 `json:"mem_kib"`
		Time        uint32 `json:"time"`
		Parallelism uint32 `json:"parallelism"`
	}
	type configJSON struct {
		Version int        `json:"version"`
		Home    string     `json:"home"`
		Split   splitJSON  `json:"split"`
		Crypto  cryptoJSON `json:"crypto"`
		Output  struct {
			DefaultFormat string `json:"default_format"`
			Color         string `json:"color"`
			Verbose       bool   `json:"verbose"`
		} `json:"output"`
		Logging struct {
			Level string `json:"level"`
			File  string `json:"file"`
		} `json:"logging"`
	}

	outCfg := configJSON{
		Version: c.Version,
		Home:    c.Home,
		Split: splitJSON{
			DefaultK:        c.Split.DefaultK,
			DefaultN:        c.Split.DefaultN,
			DefaultEncoding: c.Split.DefaultEncoding,
		},
		Crypto: cryptoJSON{
			MemKiB:      c.Crypto.MemKiB,
			Time:        c.Crypto.Time,
			Parallelism: c.Crypto.Parallelism,
		},
	}
	outCfg.Output.DefaultFormat = c.Output.DefaultFormat
	outCfg.Output.Color = c.Output.Color
	outCfg.Output.Verbose = c.Output.Verbose
	outCfg.Logging.Level = c.Logging.Level
	outCfg.Logging.File = c.Logging.File

	return writeJSON(w, outCfg)
}
