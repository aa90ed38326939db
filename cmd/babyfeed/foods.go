package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/babyfeed-backend/internal/adapter/postgres"
	feedrepo "github.com/heartmarshall/babyfeed-backend/internal/adapter/postgres/feed"
	"github.com/heartmarshall/babyfeed-backend/internal/service/solidfood"
)

var normalizeFoodsCmd = &cobra.Command{
	Use:   "normalize-foods",
	Short: "Trim and lowercase every stored solid food",
	Long: `Rewrite the solid food list of every feed record into its normalized form.
Safe to re-run; records that are already normalized are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		res, err := foodService(rt).NormalizeAll(cmd.Context())
		return reportRewrite(cmd, rt.logger, "normalize", res, err)
	},
}

var (
	renameFrom string
	renameTo   string
)

var renameFoodCmd = &cobra.Command{
	Use:   "rename-food",
	Short: "Rename a solid food across all feed records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		res, err := foodService(rt).Rename(cmd.Context(), solidfood.RenameInput{OldFood: renameFrom, NewFood: renameTo})
		return reportRewrite(cmd, rt.logger, "rename", res, err)
	},
}

func foodService(rt *deps) *solidfood.Service {
	return solidfood.NewService(rt.logger, feedrepo.New(rt.pool), postgres.NewTxManager(rt.pool), rt.cfg.Feeds)
}

func reportRewrite(cmd *cobra.Command, logger *slog.Logger, op string, res solidfood.RewriteResult, err error) error {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: matched=%d updated=%d failed=%d\n", op, res.Matched, res.Updated, res.Failed)
	if err != nil {
		logger.Error(op+" failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func init() {
	renameFoodCmd.Flags().StringVar(&renameFrom, "from", "", "food name to replace (case-insensitive)")
	renameFoodCmd.Flags().StringVar(&renameTo, "to", "", "replacement food name")
	_ = renameFoodCmd.MarkFlagRequired("from")
	_ = renameFoodCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(normalizeFoodsCmd, renameFoodCmd)
}
