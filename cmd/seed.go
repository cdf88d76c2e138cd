package main

import (
	"context"
	"fmt"

	"cosmic/internal/catalog"
	"cosmic/internal/config"
	"cosmic/pkg/domain"
	"cosmic/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type seedMission struct {
	name      string
	scientist int
	planet    int
}

var (
	seedPlanets = []domain.PlanetInput{ //nolint: gochecknoglobals
		{Name: ptr("Mercury"), DistanceFromEarth: ptr(int64(77)), NearestStar: ptr("Sun")},
		{Name: ptr("Mars"), DistanceFromEarth: ptr(int64(225)), NearestStar: ptr("Sun")},
		{Name: ptr("Proxima Centauri b"), DistanceFromEarth: ptr(int64(40_208_000_000_000)), NearestStar: ptr("Proxima Centauri")},
		{Name: ptr("Unnamed")},
	}
	seedScientists = []domain.ScientistInput{ //nolint: gochecknoglobals
		{Name: "Vera Rubin", FieldOfStudy: "Astronomy"},
		{Name: "Carl Sagan", FieldOfStudy: "Planetary Science"},
		{Name: "Katherine Johnson", FieldOfStudy: "Orbital Mechanics"},
	}
	// indexes into seedScientists and seedPlanets
	seedMissions = []seedMission{ //nolint: gochecknoglobals
		{name: "Mariner 10", scientist: 2, planet: 0},
		{name: "Viking 1", scientist: 1, planet: 1},
		{name: "Perseverance", scientist: 0, planet: 1},
		{name: "Breakthrough Starshot", scientist: 1, planet: 2},
	}
)

func ptr[T any](v T) *T { return &v }

// seed creates the fixture set through c and returns how many missions were added.
func seed(ctx context.Context, c catalog.Catalog) (int, error) {
	planets := make([]domain.PlanetID, 0, len(seedPlanets))
	for _, in := range seedPlanets {
		p, err := c.CreatePlanet(ctx, in)
		if err != nil {
			return 0, fmt.Errorf("could not seed planet: %w", err)
		}
		planets = append(planets, p.ID)
	}

	scientists := make([]domain.ScientistID, 0, len(seedScientists))
	for _, in := range seedScientists {
		s, err := c.CreateScientist(ctx, in)
		if err != nil {
			return 0, fmt.Errorf("could not seed scientist %q: %w", in.Name, err)
		}
		scientists = append(scientists, s.ID)
	}

	for _, m := range seedMissions {
		_, err := c.CreateMission(ctx, domain.MissionInput{
			Name:        m.name,
			ScientistID: scientists[m.scientist],
			PlanetID:    planets[m.planet],
		})
		if err != nil {
			return 0, fmt.Errorf("could not seed mission %q: %w", m.name, err)
		}
	}

	return len(seedMissions), nil
}

// seedCommand constructs the 'seed' subcommand that loads a small fixture set
// of planets, scientists and missions.
func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Loads sample planets, scientists and missions",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			db, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			n, err := seed(ctx, catalog.New(db.Storage))
			if err != nil {
				logger.Fatal(ctx, "could not seed database", zap.Error(err))
			}
			logger.Info(ctx, "database seeded", zap.Int("missions", n))
		},
	}

	return cmd
}
