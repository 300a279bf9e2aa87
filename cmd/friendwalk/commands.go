package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sanonone/friendgraph/pkg/friends"
)

func newWalkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "walk",
		Short: "Print the traversal, one friend per line",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			dir, err := a.loadDirectory()
			if err != nil {
				return err
			}
			it, err := a.iterator(dir)
			if err != nil {
				return err
			}

			if a.cfg.Format == "json" {
				records := it.All()
				if records == nil {
					records = []friends.Record{}
				}
				return writeJSON(a, records)
			}
			for rec := range it.Seq() {
				fmt.Fprintf(a.out, "%s\t%s\n", rec.Name, rec.Gender)
			}
			return nil
		},
	}
}

func newLevelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Print the traversal grouped by level",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			dir, err := a.loadDirectory()
			if err != nil {
				return err
			}
			it, err := a.iterator(dir)
			if err != nil {
				return err
			}

			levels := it.Levels()
			if a.cfg.Format == "json" {
				if levels == nil {
					levels = []friends.Level{}
				}
				return writeJSON(a, levels)
			}
			for _, level := range levels {
				names := make([]string, len(level.Records))
				for i, rec := range level.Records {
					names[i] = rec.Name
				}
				fmt.Fprintf(a.out, "%d: %s\n", level.Depth, strings.Join(names, ", "))
			}
			return nil
		},
	}
}

type stats struct {
	Records   int                   `json:"records"`
	Seeds     []string              `json:"seeds"`
	Reachable int                   `json:"reachable"`
	Depth     int                   `json:"depth"`
	Orphans   []string              `json:"orphans"`
	Dangling  []friends.DanglingRef `json:"dangling"`
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the directory: seeds, reachability and dangling references",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			dir, err := a.loadDirectory()
			if err != nil {
				return err
			}

			levels := friends.ReachableLevels(dir)
			s := stats{
				Records:   dir.Len(),
				Seeds:     dir.Best(),
				Reachable: len(levels),
				Dangling:  dir.Dangling(),
			}
			for _, depth := range levels {
				s.Depth = max(s.Depth, depth+1)
			}
			for _, name := range dir.Names() {
				if _, ok := levels[name]; !ok {
					s.Orphans = append(s.Orphans, name)
				}
			}

			if a.cfg.Format == "json" {
				return writeJSON(a, s)
			}
			fmt.Fprintf(a.out, "records:   %d\n", s.Records)
			fmt.Fprintf(a.out, "seeds:     %s\n", strings.Join(s.Seeds, ", "))
			fmt.Fprintf(a.out, "reachable: %d\n", s.Reachable)
			fmt.Fprintf(a.out, "depth:     %d\n", s.Depth)
			fmt.Fprintf(a.out, "orphans:   %s\n", strings.Join(s.Orphans, ", "))
			refs := make([]string, len(s.Dangling))
			for i, ref := range s.Dangling {
				refs[i] = ref.From + " -> " + ref.To
			}
			fmt.Fprintf(a.out, "dangling:  %s\n", strings.Join(refs, ", "))
			return nil
		},
	}
}

func writeJSON(a *app, v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
