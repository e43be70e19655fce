package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/book-reader/internal/book"
	"github.com/ziadkadry99/book-reader/internal/output"
)

var tocCmd = &cobra.Command{
	Use:   "toc",
	Short: "Print the book's table of contents",
	Long: `Prints the chapter tree derived from the book's headings. Use --flat for
every extracted heading, and --output json with --query to filter the result
with a jq expression.`,
	RunE: runTOC,
}

func init() {
	tocCmd.Flags().StringP("output", "o", "table", "output format: table|json|yaml")
	tocCmd.Flags().Bool("flat", false, "list every extracted heading instead of the chapter tree")
	tocCmd.Flags().String("query", "", "jq filter applied to json or yaml output")
	rootCmd.AddCommand(tocCmd)
}

func runTOC(cmd *cobra.Command, args []string) error {
	_, b, err := loadBook()
	if err != nil {
		return err
	}

	formatFlag, _ := cmd.Flags().GetString("output")
	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	flat, _ := cmd.Flags().GetBool("flat")
	query, _ := cmd.Flags().GetString("query")

	printer := output.NewPrinter(os.Stdout, format, query)
	if !printer.Structured() {
		if query != "" {
			return fmt.Errorf("--query requires --output json or yaml")
		}
		if flat {
			return printer.PrintTable(headingTable(b.Headings))
		}
		return printer.PrintTable(chapterTable(b.Chapters))
	}

	if flat {
		headings := b.Headings
		if headings == nil {
			headings = []book.Heading{}
		}
		return printer.Print(headings)
	}
	return printer.Print(b.Chapters)
}

func headingTable(headings []book.Heading) ([]string, [][]string) {
	rows := make([][]string, 0, len(headings))
	for _, h := range headings {
		rows = append(rows, []string{strconv.Itoa(h.Level), h.ID, h.Title})
	}
	return []string{"LEVEL", "ID", "TITLE"}, rows
}

// chapterTable lists each chapter followed by its sub-chapters, with the
// owning chapter id on every row.
func chapterTable(tree book.Tree) ([]string, [][]string) {
	var rows [][]string
	for _, c := range tree {
		rows = append(rows, []string{c.ID, c.Title, c.ID})
		for _, sub := range c.SubChapters {
			indent := "  "
			if sub.Level == 3 {
				indent = "    "
			}
			rows = append(rows, []string{sub.ID, indent + sub.Title, c.ID})
		}
	}
	return []string{"ID", "TITLE", "CHAPTER"}, rows
}
