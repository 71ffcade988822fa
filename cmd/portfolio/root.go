package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sarmadgardezi/portfolio"
)

// fileConfig mirrors portfolio.SiteConfig for viper. Zero values fall back to
// the server defaults.
type fileConfig struct {
	URL           string        `mapstructure:"url"`
	Addr          string        `mapstructure:"addr"`
	SessionSecret string        `mapstructure:"session_secret"`
	CookieSecure  bool          `mapstructure:"cookie_secure"`
	DefaultTheme  string        `mapstructure:"default_theme"`
	SitemapPaths  []string      `mapstructure:"sitemap_paths"`
	AssetMaxAge   time.Duration `mapstructure:"asset_max_age"`
	ThemeRequests int           `mapstructure:"theme_requests"`
	ThemeWindow   time.Duration `mapstructure:"theme_window"`
}

func (fc fileConfig) site() portfolio.SiteConfig {
	return portfolio.SiteConfig{
		URL:           fc.URL,
		Addr:          fc.Addr,
		SessionSecret: fc.SessionSecret,
		CookieSecure:  fc.CookieSecure,
		DefaultTheme:  fc.DefaultTheme,
		SitemapPaths:  fc.SitemapPaths,
		AssetMaxAge:   fc.AssetMaxAge,
		ThemeRequests: fc.ThemeRequests,
		ThemeWindow:   fc.ThemeWindow,
	}
}

var (
	cfgFile   string
	cfgViper  *viper.Viper
	appConfig fileConfig
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio site server and brand asset tools",
	Long: `portfolio serves the personal portfolio site and renders its brand assets:
the theme-aware logo, the page metadata, and the Open Graph preview card.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./portfolio.yaml)")
	rootCmd.AddCommand(serveCmd, metaCmd, logoCmd, ogImageCmd, themesCmd, versionCmd)
}

func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()

	v.SetDefault("addr", ":3000")
	v.SetDefault("default_theme", "light")
	v.SetDefault("cookie_secure", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("portfolio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows about.
	for _, key := range []string{"url", "session_secret", "sitemap_paths", "asset_max_age", "theme_requests", "theme_window"} {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfgViper = v
	return nil
}
