package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/book-reader/internal/book"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <heading-id>",
	Short: "Print the id of the chapter that owns a heading",
	Long: `Prints the id of the chapter whose own id or one of whose sub-chapter ids
matches the given heading id. Prints an empty line when no chapter owns it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, b, err := loadBook()
		if err != nil {
			return err
		}
		chapterID := book.ResolveActiveParent(b.Chapters, args[0])
		log.WithFields(logrus.Fields{
			"id":      args[0],
			"chapter": chapterID,
		}).Debug("resolved heading")
		fmt.Fprintln(cmd.OutOrStdout(), chapterID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
