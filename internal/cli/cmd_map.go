package cli

import (
	"fmt"

	"github.com/alexanderramin/swimadmin/internal/cli/formatter"
	"github.com/alexanderramin/swimadmin/internal/mapeditor"
	"github.com/spf13/cobra"
)

func newMapCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Inspect level maps",
	}
	cmd.AddCommand(newMapRenderCmd(app))
	return cmd
}

func newMapRenderCmd(app *App) *cobra.Command {
	var canvas bool
	cmd := &cobra.Command{
		Use:   "render <levelID>",
		Short: "Print a level's map, or its default layout if none is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lc, err := app.Maps.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			editor := mapeditor.Open(lc.Level.ID, lc.Map, lc.Skills)
			names := make(map[string]string, len(lc.Skills))
			for _, sk := range lc.Skills {
				names[sk.ID] = sk.Name
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatLevelMap(lc.Level, editor.Snapshot(), names, editor.Generated()))
			if canvas {
				cols, rows := formatter.CanvasSize(editor.Nodes())
				if c := buildCanvas(editor, cols, rows); c.Cols > 0 {
					fmt.Fprintln(out)
					fmt.Fprintln(out, c.Render())
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&canvas, "canvas", true, "draw the map as text below the listing")
	return cmd
}
