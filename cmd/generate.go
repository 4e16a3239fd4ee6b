package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/Glen-Lee-glitch/blog-auto-made/internal/blog"
	"github.com/Glen-Lee-glitch/blog-auto-made/internal/content"
	"github.com/Glen-Lee-glitch/blog-auto-made/internal/post"
)

// GenerateCmd returns the generate command.
func GenerateCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.IntFlag{
			Name:    "days",
			Aliases: []string{"d"},
			Usage:   "How many days of history the post covers",
			Value:   7,
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"o"},
			Usage:   "Directory for generated posts (default: from config)",
		},
		&cli.BoolFlag{
			Name:  "no-file-changes",
			Usage: "Skip per-file diff detail in the generated post",
		},
		&cli.IntSliceFlag{
			Name:  "multi",
			Usage: "Generate one post per window, e.g. --multi 1 --multi 7 --multi 30",
		},
	)

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Generate a devlog post from recent commits",
		Flags:   flags,
		Action:  generateAction,
	}
}

func generateAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	days, err := resolveDays(c, ctx.Config)
	if err != nil {
		return err
	}

	gen, err := content.New(c.Context, content.Config{
		Provider: ctx.Config.LLM.Provider,
		Model:    ctx.Config.LLM.Model,
	})
	if err != nil {
		return fmt.Errorf("failed to set up content generation: %w", err)
	}

	withChanges := ctx.Config.Post.IncludeFileChanges && !c.Bool("no-file-changes")

	formatter := post.NewFormatter(post.Meta{
		Author:     ctx.Config.Post.Author,
		Categories: ctx.Config.Post.Categories,
		Tags:       ctx.Config.Post.Tags,
	})

	pipeline := blog.New(ctx.Extractor, gen, formatter, blog.Options{
		OutputDir:       firstNonEmpty(c.String("output-dir"), ctx.Config.Post.OutputDir),
		WithFileChanges: withChanges,
	})

	if windows := c.IntSlice("multi"); len(windows) > 0 {
		return generateMany(c, pipeline, windows, withChanges)
	}

	p, err := pipeline.GeneratePost(c.Context, days)
	if err != nil {
		if errors.Is(err, blog.ErrNoCommits) {
			fmt.Printf("No commits in the last %d days, nothing to write.\n", days)
			return nil
		}
		log.Errorf("Post generation failed: %v", err)
		color.Red("\n❌ Blog post generation failed.")
		fmt.Println("Check the log file for details.")
		return nil
	}

	color.Green("\n✅ Blog post generated!")
	fmt.Printf("📁 File: %s\n", p.Path)
	fmt.Printf("📊 Window: last %d days\n", days)
	fmt.Printf("🔍 File change detail: %s\n", detailLabel(withChanges))
	return nil
}

func generateMany(c *cli.Context, pipeline *blog.Generator, windows []int, withChanges bool) error {
	for _, w := range windows {
		if w <= 0 {
			return fmt.Errorf("days must be a positive number, got %d", w)
		}
	}

	posts, err := pipeline.GenerateMany(c.Context, windows)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Println("No commits in any requested window, nothing to write.")
		return nil
	}

	color.Green("\n✅ Generated %d post(s)!", len(posts))
	for _, p := range posts {
		fmt.Printf("📁 %s\n", p.Path)
	}
	fmt.Printf("📊 Windows: %v days\n", windows)
	fmt.Printf("🔍 File change detail: %s\n", detailLabel(withChanges))
	return nil
}

func detailLabel(withChanges bool) string {
	if withChanges {
		return "included"
	}
	return "excluded"
}
