package main

import (
	"fmt"

	"github.com/kotaroooo0/gomamayo"
	"github.com/spf13/cobra"
)

var listDBPath string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "保存済みの解析結果を次数の高い順に表示する",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listDBPath, "db", "", "解析結果を保存したSQLiteファイル")
	listCmd.MarkFlagRequired("db")
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := gomamayo.NewDBClient(listDBPath)
	if err != nil {
		return fmt.Errorf("データベースを開けませんでした: %w", err)
	}
	defer db.Close()

	storage := gomamayo.NewStorageRdbImpl(db)
	results, err := storage.GetAllResults()
	if err != nil {
		return err
	}
	for _, result := range gomamayo.NewDegreeSorter().Sort(results) {
		fmt.Println(result.Sentence())
	}
	return nil
}
