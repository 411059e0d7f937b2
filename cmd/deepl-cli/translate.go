package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taulin/deepl-cli/internal/deepl"
	"github.com/taulin/deepl-cli/internal/logger"
	"github.com/taulin/deepl-cli/internal/subs"
	"github.com/taulin/deepl-cli/internal/textstat"
)

type translateOptions struct {
	sourceLanguage     string
	targetLanguage     string
	inputFile          string
	outputFile         string
	preserveFormatting bool
	formalityMore      bool
	formalityLess      bool
	splitSentences     string
	verbose            bool
}

func newTranslateCmd() *cobra.Command {
	opts := translateOptions{}
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate text or subtitle files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addTranslateFlags(cmd, &opts)
	return cmd
}

func addTranslateFlags(cmd *cobra.Command, opts *translateOptions) {
	cmd.Flags().StringVar(&opts.sourceLanguage, "source-language", "", "Source language code (detected when omitted)")
	cmd.Flags().StringVar(&opts.targetLanguage, "target-language", "", "Target language code (required)")
	cmd.Flags().StringVar(&opts.inputFile, "input-file", "", "Read input from a file instead of stdin")
	cmd.Flags().StringVar(&opts.outputFile, "output-file", "", "Write output to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.preserveFormatting, "preserve-formatting", true, "Keep the formatting of the input text")
	cmd.Flags().BoolVar(&opts.formalityMore, "formality-more", false, "Prefer a more formal register")
	cmd.Flags().BoolVar(&opts.formalityLess, "formality-less", false, "Prefer a less formal register")
	cmd.Flags().StringVar(&opts.splitSentences, "split-sentences", "", "Sentence splitting: none, punctuation or all")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print character statistics to stderr")
}

func runTranslate(cmd *cobra.Command, opts *translateOptions) error {
	if opts.targetLanguage == "" {
		return errors.New("No value provided for required options '--target-language'")
	}

	translateOpts, err := buildTranslateOptions(opts)
	if err != nil {
		return err
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	if opts.inputFile != "" && subs.IsSubtitlePath(opts.inputFile) {
		return translateSubtitles(ctx, cmd, client, opts, translateOpts)
	}
	return translateText(ctx, cmd, client, opts, translateOpts)
}

func buildTranslateOptions(opts *translateOptions) (deepl.TranslateOptions, error) {
	translateOpts := deepl.TranslateOptions{
		SourceLang:         opts.sourceLanguage,
		TargetLang:         opts.targetLanguage,
		PreserveFormatting: &opts.preserveFormatting,
	}

	if opts.formalityMore && opts.formalityLess {
		return translateOpts, errors.New("cannot combine --formality-more with --formality-less")
	}
	if opts.formalityMore {
		translateOpts.Formality = deepl.FormalityMore
	}
	if opts.formalityLess {
		translateOpts.Formality = deepl.FormalityLess
	}

	switch opts.splitSentences {
	case "":
		// Left to the vendor default.
	case "none":
		split := deepl.SplitNone
		translateOpts.SplitSentences = &split
	case "punctuation":
		split := deepl.SplitPunctuation
		translateOpts.SplitSentences = &split
	case "all":
		split := deepl.SplitPunctuationAndNewlines
		translateOpts.SplitSentences = &split
	default:
		return translateOpts, fmt.Errorf("invalid --split-sentences value %q. Must be 'none', 'punctuation' or 'all'", opts.splitSentences)
	}

	return translateOpts, nil
}

func translateText(ctx context.Context, cmd *cobra.Command, client *deepl.Client, opts *translateOptions, translateOpts deepl.TranslateOptions) error {
	input, err := readInput(cmd, opts.inputFile)
	if err != nil {
		return err
	}
	if strings.TrimSpace(input) == "" {
		return errors.New("no input text to translate")
	}
	translateOpts.Text = []string{input}

	results, err := client.Translate(ctx, translateOpts)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return errors.New("the server returned no translations")
	}

	var output strings.Builder
	for _, result := range results {
		output.WriteString(result.Text)
	}
	if err := writeOutput(cmd, opts.outputFile, output.String()+"\n"); err != nil {
		return err
	}

	if opts.verbose {
		printTranslateStats(ctx, client, translateOpts.Text, results[0].DetectedSourceLanguage)
	}
	return nil
}

func translateSubtitles(ctx context.Context, cmd *cobra.Command, client *deepl.Client, opts *translateOptions, translateOpts deepl.TranslateOptions) error {
	doc, err := subs.Load(opts.inputFile)
	if err != nil {
		return err
	}

	translateOpts.Text = doc.Texts()
	results, err := client.Translate(ctx, translateOpts)
	if err != nil {
		return err
	}

	translated := make([]string, len(results))
	for i, result := range results {
		translated[i] = result.Text
	}
	if err := doc.Apply(translated); err != nil {
		return err
	}

	var output strings.Builder
	target := opts.outputFile
	if target == "" {
		target = opts.inputFile
	}
	if err := doc.Write(&output, target); err != nil {
		return fmt.Errorf("failed to render subtitles: %w", err)
	}
	if err := writeOutput(cmd, opts.outputFile, output.String()); err != nil {
		return err
	}

	if opts.verbose {
		detected := ""
		if len(results) > 0 {
			detected = results[0].DetectedSourceLanguage
		}
		printTranslateStats(ctx, client, translateOpts.Text, detected)
	}
	return nil
}

func readInput(cmd *cobra.Command, inputFile string) (string, error) {
	if inputFile == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeOutput(cmd *cobra.Command, outputFile, content string) error {
	if outputFile == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	}
	return os.WriteFile(outputFile, []byte(content), 0600)
}

func printTranslateStats(ctx context.Context, client *deepl.Client, texts []string, detectedSource string) {
	chars := textstat.CharacterCount(texts)
	logger.Info("Translation done", "input_chunks", len(texts), "input_characters", chars, "detected_source", detectedSource)

	usage, err := client.UsageInformation(ctx)
	if err != nil {
		logger.Warn("Could not fetch usage information", "error", err)
		return
	}
	logger.Info("Account quota", "character_count", usage.CharacterCount, "character_limit", usage.CharacterLimit)
}
