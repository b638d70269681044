package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/swimadmin/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo curriculum and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := app.Seed.SeedDemo(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.Skipped {
				fmt.Fprintln(out, formatter.Dim("Curriculum already present; nothing seeded."))
			} else {
				fmt.Fprintf(out, "Seeded %d programs, %d levels, %d skills, %d progress points, %d maps.\n",
					res.Programs, res.Levels, res.Skills, res.Progress, res.Maps)
			}
			fmt.Fprintln(out)

			tree, err := loadCurriculum(cmd.Context(), app)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatCurriculum(tree))
			return nil
		},
	}
}

func loadCurriculum(ctx context.Context, app *App) ([]formatter.CurriculumProgram, error) {
	programs, err := app.Programs.List(ctx)
	if err != nil {
		return nil, err
	}
	tree := make([]formatter.CurriculumProgram, 0, len(programs))
	for _, p := range programs {
		levels, err := app.Levels.ListByProgram(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		entry := formatter.CurriculumProgram{Program: p}
		for _, l := range levels {
			skills, err := app.Maps.SkillsForLevel(ctx, l.ID)
			if err != nil {
				return nil, err
			}
			m, err := app.Maps.Get(ctx, l.ID)
			if err != nil {
				return nil, err
			}
			entry.Levels = append(entry.Levels, formatter.CurriculumLevel{Level: l, Skills: skills, HasMap: m != nil})
		}
		tree = append(tree, entry)
	}
	return tree, nil
}
