/*
Copyright © 2022 Moises P. Sena <moisespsena@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/mitchellh/go-homedir"
	rp "github.com/moisespsena-go/rollpost/pkg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "rollpost POST",
	Short:         "moves the date of a dated post file to today",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			flags     = cmd.Flags()
			dryRun, _ = flags.GetBool("dry-run")
			date, _   = flags.GetString("date")
			log       = newLogger(cmd.ErrOrStderr(), cmd)
		)

		cfg := rp.RunConfig{
			Input:       args[0],
			RootDir:     viper.GetString("root"),
			PostsDir:    viper.GetString("posts-dir"),
			FrontMatter: viper.GetBool("front-matter"),
			DryRun:      dryRun,
			Log:         log,
		}
		if cfg.Now, err = parseDate(date); err != nil {
			return
		}

		var res *rp.Result
		if res, err = rp.Exec(cfg); err != nil {
			return
		}
		if dryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", res.From.Path(), res.To.Path())
		}
		return
	},
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(rp.DateLayout, s, time.Local)
	if err != nil {
		return t, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

func newLogger(w io.Writer, cmd *cobra.Command) logr.Logger {
	v, _ := cmd.Flags().GetCount("verbose")
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintln(w, prefix+":", args)
		} else {
			fmt.Fprintln(w, args)
		}
	}, funcr.Options{Verbosity: v})
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rollpost:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pflags := rootCmd.PersistentFlags()
	pflags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rollpost.yaml)")
	pflags.StringP("root", "C", ".", "site directory the post path is relative to")
	pflags.String("posts-dir", rp.DefaultPostsDir, "posts directory, relative to the site directory")
	pflags.CountP("verbose", "v", "verbose output, repeat for more")

	flags := rootCmd.Flags()
	flags.BoolP("dry-run", "n", false, "print the new path without renaming")
	flags.BoolP("front-matter", "F", false, "also set the front matter date key")
	flags.String("date", "", "date to roll to, YYYY-MM-DD (default today)")

	rootCmd.AddCommand(listCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("posts-dir", rootCmd.PersistentFlags().Lookup("posts-dir"))
	viper.BindPFlag("front-matter", rootCmd.Flags().Lookup("front-matter"))

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory, then the working directory,
		// with name ".rollpost" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".rollpost")
	}

	viper.SetEnvPrefix("rollpost")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
