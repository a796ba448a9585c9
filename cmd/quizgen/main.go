package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/render"
	"quiz-forge/internal/service"

	"github.com/spf13/cobra"
)

type options struct {
	file   string
	topN   int
	seed   int64
	asJSON bool
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "quizgen",
		Short:         "Generate assignment and quiz questions from text",
		Long:          "Extract frequent keywords from a document and turn them into essay prompts and multiple-choice questions.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)

	rootCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "Read the text from a file instead of arguments or stdin")
	rootCmd.PersistentFlags().IntVarP(&opts.topN, "top-n", "n", 0, "Number of keywords to extract (default from config)")
	rootCmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "Print the result as JSON")

	generateCmd := &cobra.Command{
		Use:   "generate [text...]",
		Short: "Generate assignment questions and MCQs",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, opts, args)
			if err != nil {
				return err
			}

			svc := newService(cmd, opts)
			resp, err := svc.Generate(context.Background(), &dto.GenerateRequest{Text: text, TopN: opts.topN})
			if err != nil {
				return err
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return render.Text(cmd.OutOrStdout(), resp)
		},
	}
	generateCmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for option shuffling; 0 picks a random seed")

	keywordsCmd := &cobra.Command{
		Use:   "keywords [text...]",
		Short: "Print the extracted keywords, most frequent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, opts, args)
			if err != nil {
				return err
			}

			svc := newService(cmd, opts)
			resp, err := svc.ExtractKeywords(context.Background(), &dto.KeywordsRequest{Text: text, TopN: opts.topN})
			if err != nil {
				return err
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return render.Keywords(cmd.OutOrStdout(), resp.Keywords)
		},
	}

	rootCmd.AddCommand(generateCmd, keywordsCmd)
	return rootCmd
}

func newService(cmd *cobra.Command, opts *options) service.GeneratorService {
	var rng domain.Randomizer
	if cmd.Flags().Changed("seed") && opts.seed != 0 {
		rng = domain.NewSeededRandomizer(opts.seed)
	}
	return service.NewGeneratorService(config.Default().Generator, nil, rng)
}

// readText takes the text from --file, then positional arguments, then stdin.
func readText(cmd *cobra.Command, opts *options, args []string) (string, error) {
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", opts.file, err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
