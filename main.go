/*
Copyright © 2025 Norio Nomura

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
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/norio-nomura/zipeq/pkg/bench"
	"github.com/norio-nomura/zipeq/pkg/options"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const configF = "config"

func newCmd() *cobra.Command {
	var cfgFile string
	d := options.Default()

	cmd := &cobra.Command{
		Use:           "zipeq [flags]",
		Short:         "Compare checked zippers against a truncating zip.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVar(&cfgFile, configF, "", "YAML file with option values.")
	cmd.Flags().Int(options.SizeKey, d.Size, "Length of the zipped arrays.")
	cmd.Flags().Int(options.RoundsKey, d.Rounds, "Rounds per workload.")
	cmd.Flags().String(options.TextKey, d.Text, "Text used by the chars-* workloads.")
	cmd.Flags().StringSlice(options.WorkloadsKey, d.Workloads, "Workloads to run.")
	cmd.Flags().Int(options.TimeoutSecondsKey, d.TimeoutSeconds, "Stop after this many seconds. 0 means no limit.")
	cmd.Flags().BoolP(options.VerboseKey, "v", d.Verbose, "Enable debug logging.")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		v := viper.New()
		if cfgFile != "" {
			v.SetConfigType("yaml")
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
		}
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		opt, err := options.Load(v)
		if err != nil {
			return err
		}

		level := slog.LevelInfo
		if opt.Verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

		ctx, cancel := opt.ContextWithTimeout(cmd.Context())
		defer cancel()
		results, err := bench.Run(ctx, opt)
		bench.Render(cmd.OutOrStdout(), results)
		return err
	}
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()
	if err := newCmd().ExecuteContext(ctx); err != nil {
		slog.Error("zipeq failed", slog.Any("err", err))
		stop()
		os.Exit(1)
	}
}
