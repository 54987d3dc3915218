package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kevin-chtw/tw_paohuzi/game"
	"github.com/kevin-chtw/tw_paohuzi/utils"
	"github.com/spf13/cobra"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

var (
	configFile string
	rounds     int
	seed       int64
	logLevel   string
	logDir     string
)

var rootCmd = &cobra.Command{
	Use:   "paohuzi",
	Short: "paohuzi 三人跑胡子机器人对局",
	Long:  `paohuzi 三人跑胡子机器人对局，按配置连续打若干局并输出积分`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := game.LoadConfig(configFile)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("rounds") {
			conf.Rounds = rounds
		}
		if flags.Changed("seed") {
			conf.Seed = seed
		}
		if flags.Changed("logLevel") {
			conf.LogLevel = logLevel
		}
		if flags.Changed("logDir") {
			conf.LogDir = logDir
		}
		if err := conf.Validate(); err != nil {
			return err
		}
		if err := utils.InitLogger(conf.LogLevel, conf.LogDir); err != nil {
			return err
		}
		logger.Log.Infof("配置: %+v", *conf)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		table := game.NewTable(conf)
		results, err := table.Run(ctx)
		for _, r := range results {
			if r.IsDraw() {
				fmt.Printf("第%d局 流局\n", r.Round)
				continue
			}
			fmt.Printf("第%d局 座位%d胡 %d胡息 %d分\n", r.Round, r.Winner, r.Huxi, r.Points)
		}
		fmt.Printf("总分: %v\n", table.GetTotals())
		return err
	},
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file (yaml)")
	rootCmd.Flags().IntVar(&rounds, "rounds", 1, "number of rounds to play")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	rootCmd.Flags().StringVar(&logLevel, "logLevel", "info", "log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&logDir, "logDir", "", "log directory, empty for stderr only")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
