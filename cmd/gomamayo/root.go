package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/kotaroooo0/gomamayo"
	"github.com/kotaroooo0/gomamayo/morphology"
	"github.com/spf13/cobra"
)

var (
	charMode    bool
	showReading bool
	romaji      bool
	verbose     bool
	savePath    string
)

var rootCmd = &cobra.Command{
	Use:   "gomamayo <word> [<word>...]",
	Short: "ゴママヨ判定器",
	Long: `与えられた語を形態素解析して読みを求め、隣り合う語の読みの重なりから
ゴママヨかどうかを判定します。`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          runAnalyze,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVar(&charMode, "chars", false, "形態素解析を行わず、1文字を1単位として繰り返し構造を判定する")
	rootCmd.Flags().BoolVar(&showReading, "reading", false, "判定に使った読みを表示する")
	rootCmd.Flags().BoolVar(&romaji, "romaji", false, "読みをヘボン式ローマ字で表示する")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "解析結果の構造体を表示する")
	rootCmd.Flags().StringVar(&savePath, "save", "", "解析結果を保存するSQLiteファイル")
	rootCmd.AddCommand(listCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if charMode {
		for _, word := range args {
			word = strings.TrimSpace(word)
			fmt.Println(classifyChars(word))
		}
		return nil
	}

	kagome, err := morphology.NewKagome()
	if err != nil {
		return fmt.Errorf("形態素解析器を初期化できませんでした: %w", err)
	}
	analyzer := gomamayo.NewAnalyzer(
		[]gomamayo.CharFilter{gomamayo.NewLongVowelCharFilter()},
		gomamayo.NewMorphologicalTokenizer(kagome),
		[]gomamayo.TokenFilter{gomamayo.NewSymbolFilter()},
	)

	var storage gomamayo.Storage
	if savePath != "" {
		db, err := gomamayo.NewDBClient(savePath)
		if err != nil {
			return fmt.Errorf("データベースを開けませんでした: %w", err)
		}
		defer db.Close()
		storage = gomamayo.NewStorageRdbImpl(db)
	}

	for _, word := range args {
		result := analyzer.Analyze(strings.TrimSpace(word))
		fmt.Println(result.Sentence())
		if showReading || romaji {
			fmt.Println("  " + strings.Join(displayReadings(result.Readings), " / "))
		}
		if verbose {
			pp.Println(result)
		}
		if storage != nil {
			if _, err := storage.AddResult(result); err != nil {
				return fmt.Errorf("%sの解析結果を保存できませんでした: %w", word, err)
			}
		}
	}
	return nil
}

// classifyChars は1文字を1単位として繰り返し構造を判定した結果の文を返す
func classifyChars(word string) string {
	seq := gomamayo.Sequence(gomamayo.NewRuneTokenizer().Tokenize(word).Surfaces())
	return fmt.Sprintf("%s: %s", word, gomamayo.Classify(seq).Describe())
}

func displayReadings(readings []string) []string {
	if !romaji {
		return readings
	}
	tokens := make([]gomamayo.Token, len(readings))
	for i, reading := range readings {
		tokens[i] = gomamayo.NewToken(reading)
	}
	stream := gomamayo.NewReadingformFilter(gomamayo.Romaji).Filter(gomamayo.NewTokenStream(tokens))
	return stream.Readings()
}
