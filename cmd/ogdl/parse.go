package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ikesyo/ogdl/ogdl"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse an OGDL document and print its nodes",
	Long:  "Parse an OGDL file (or standard input when the file is \"-\") and print the resulting node tree.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("json", false, "Print nodes as JSON")
	parseCmd.Flags().Int("indent", 2, "Indent width for text output")

	_ = viper.BindPFlag("json", parseCmd.Flags().Lookup("json"))
	_ = viper.BindPFlag("indent", parseCmd.Flags().Lookup("indent"))

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	asJSON := viper.GetBool("json")
	indent := viper.GetInt("indent")
	verbose := viper.GetBool("verbose")

	src, err := readSource(path)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	nodes, err := ogdl.Parse(string(src))
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Parsed %d root node(s)\n", len(nodes))
	}

	if asJSON {
		out, err := json.MarshalIndent(nodes, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding nodes: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for _, n := range nodes {
		fmt.Print(n.Text(indent))
	}
	return nil
}

func readSource(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
