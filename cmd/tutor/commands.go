package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/phrazzld/scry-tutor/internal/domain"
	"github.com/phrazzld/scry-tutor/internal/roadmap"
	"github.com/spf13/cobra"
)

// allThematics selects every thematic of the roadmap.
const allThematics = -1

// newRootCmd builds the command tree. Commands build their dependencies with
// factory when they run.
func newRootCmd(factory appFactory) *cobra.Command {
	var roadmapPath string

	rootCmd := &cobra.Command{
		Use:   "tutor",
		Short: "Tutor - learning assistant backed by a chat completion service",
		Long: `Tutor explains the topics of a YAML roadmap, grades your answers and
revises explanations you correct.

  tutor generate --out roadmap.yaml                           Explain every topic
  tutor evaluate --thematic 0 --topic 1 --answer "..."        Grade an answer
  tutor correct --thematic 0 --topic 1 --correction "..."     Revise an explanation
  tutor serve                                                 Start the HTTP API`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&roadmapPath, "roadmap", "",
		"Roadmap YAML file (defaults to ROADMAP_FILE_PATH)")

	rootCmd.AddCommand(
		newGenerateCmd(factory, &roadmapPath),
		newEvaluateCmd(factory, &roadmapPath),
		newCorrectCmd(factory, &roadmapPath),
		newServeCmd(factory),
	)
	return rootCmd
}

func newGenerateCmd(factory appFactory, roadmapPath *string) *cobra.Command {
	var (
		thematicIndex int
		outPath       string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate explanations for the roadmap topics",
		Long: `Ask for a beginner-friendly explanation of every topic, one request at a
time in roadmap order. The first failure stops the run.

The updated roadmap is written to --out, or to stdout when --out is empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			thematics, err := app.loadRoadmap(*roadmapPath)
			if err != nil {
				return err
			}

			if thematicIndex == allThematics {
				err = app.tutor.GenerateRoadmap(cmd.Context(), thematics)
			} else {
				var thematic *domain.Thematic
				thematic, err = roadmap.Thematic(thematics, thematicIndex)
				if err != nil {
					return err
				}
				err = app.tutor.GenerateKnowledge(cmd.Context(), thematic)
			}
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			return writeRoadmap(cmd.OutOrStdout(), outPath, thematics)
		},
	}

	cmd.Flags().IntVar(&thematicIndex, "thematic", allThematics, "Only explain the thematic at this index")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the updated roadmap to this file")
	return cmd
}

func newEvaluateCmd(factory appFactory, roadmapPath *string) *cobra.Command {
	var (
		thematicIndex int
		topicIndex    int
		answer        string
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Grade an answer about one topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			thematics, err := app.loadRoadmap(*roadmapPath)
			if err != nil {
				return err
			}
			topic, err := selectTopic(thematics, thematicIndex, topicIndex)
			if err != nil {
				return err
			}

			result, err := app.tutor.EvaluateAnswer(cmd.Context(), answer, *topic)
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Score: %d/10\n\n%s\n", result.Score, result.Explanation)
			return err
		},
	}

	cmd.Flags().IntVar(&thematicIndex, "thematic", 0, "Index of the thematic")
	cmd.Flags().IntVar(&topicIndex, "topic", 0, "Index of the topic within the thematic")
	cmd.Flags().StringVar(&answer, "answer", "", "Your answer")
	_ = cmd.MarkFlagRequired("answer")
	return cmd
}

func newCorrectCmd(factory appFactory, roadmapPath *string) *cobra.Command {
	var (
		thematicIndex int
		topicIndex    int
		correction    string
		outPath       string
	)

	cmd := &cobra.Command{
		Use:   "correct",
		Short: "Revise the explanation of one topic",
		Long: `Send a correction about an existing explanation and store the revised
explanation. The roadmap file is rewritten unless --out names another file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			path := app.roadmapPath(*roadmapPath)
			thematics, err := app.loadRoadmap(path)
			if err != nil {
				return err
			}
			topic, err := selectTopic(thematics, thematicIndex, topicIndex)
			if err != nil {
				return err
			}

			if err := app.tutor.CorrectExplanation(cmd.Context(), correction, topic); err != nil {
				return fmt.Errorf("correction failed: %w", err)
			}

			if outPath == "" {
				outPath = path
			}
			if err := roadmap.Save(outPath, thematics); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), topic.ExplanationText())
			return err
		},
	}

	cmd.Flags().IntVar(&thematicIndex, "thematic", 0, "Index of the thematic")
	cmd.Flags().IntVar(&topicIndex, "topic", 0, "Index of the topic within the thematic")
	cmd.Flags().StringVar(&correction, "correction", "", "What is wrong with the current explanation")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the updated roadmap to this file instead")
	_ = cmd.MarkFlagRequired("correction")
	return cmd
}

// roadmapPath returns flagValue, or the configured roadmap path when the flag is empty.
func (app *application) roadmapPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return app.config.Roadmap.FilePath
}

// loadRoadmap reads the roadmap named by flagValue or the configuration.
func (app *application) loadRoadmap(flagValue string) ([]domain.Thematic, error) {
	path := app.roadmapPath(flagValue)
	if path == "" {
		return nil, errors.New("no roadmap file: set ROADMAP_FILE_PATH or pass --roadmap")
	}

	thematics, err := roadmap.Load(path)
	if err != nil {
		return nil, err
	}
	app.logger.Debug("Roadmap loaded", "path", path, "thematic_count", len(thematics))
	return thematics, nil
}

// selectTopic returns a pointer to one topic of the roadmap.
func selectTopic(thematics []domain.Thematic, thematicIndex, topicIndex int) (*domain.Topic, error) {
	thematic, err := roadmap.Thematic(thematics, thematicIndex)
	if err != nil {
		return nil, err
	}
	return thematic.Topic(topicIndex)
}

// writeRoadmap saves thematics to outPath, or encodes them to stdout when
// outPath is empty.
func writeRoadmap(stdout io.Writer, outPath string, thematics []domain.Thematic) error {
	if outPath == "" {
		return roadmap.Encode(stdout, thematics)
	}
	return roadmap.Save(outPath, thematics)
}
