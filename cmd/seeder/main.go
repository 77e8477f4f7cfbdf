// Command seeder fills the catalog with generated development data. Each
// run writes its rows inside one transaction, so a failed run leaves the
// database untouched.
//
// Flags:
//
//	--areas   number of areas to create (default 10)
//	--cursos  number of cursos to create (default 50)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/mfigueiredo/cursos-backend/internal/adapter/postgres"
	arearepo "github.com/mfigueiredo/cursos-backend/internal/adapter/postgres/area"
	cursorepo "github.com/mfigueiredo/cursos-backend/internal/adapter/postgres/curso"
	"github.com/mfigueiredo/cursos-backend/internal/app"
	"github.com/mfigueiredo/cursos-backend/internal/config"
	"github.com/mfigueiredo/cursos-backend/internal/domain"
)

func main() {
	areasFlag := flag.Int("areas", 10, "number of areas to create")
	cursosFlag := flag.Int("cursos", 50, "number of cursos to create")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	areas := arearepo.New(pool)
	cursos := cursorepo.New(pool)
	txm := postgres.NewTxManager(pool)
	faker := gofakeit.New(0)

	err = txm.RunInTx(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()

		areaIDs := make([]int64, 0, *areasFlag)
		for i := 0; i < *areasFlag; i++ {
			saved, err := areas.Save(ctx, fakeArea(faker, i, now))
			if err != nil {
				return fmt.Errorf("seed area %d: %w", i, err)
			}
			areaIDs = append(areaIDs, *saved.ID)
		}

		for i := 0; i < *cursosFlag; i++ {
			if _, err := cursos.Save(ctx, fakeCurso(faker, i, now, areaIDs)); err != nil {
				return fmt.Errorf("seed curso %d: %w", i, err)
			}
		}

		return nil
	})
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed",
		slog.Int("areas", *areasFlag),
		slog.Int("cursos", *cursosFlag),
	)
}

func fakeArea(f *gofakeit.Faker, i int, now time.Time) *domain.Area {
	desc := f.Sentence(8)
	a := &domain.Area{
		Name:        fmt.Sprintf("%s %d", f.BS(), i),
		Description: &desc,
		Status:      domain.StatusActive,
		CreatedAt:   now.Add(-time.Duration(f.Number(0, 365*24)) * time.Hour),
	}
	if f.Bool() && f.Bool() {
		inactiveAt := now.Add(-time.Duration(f.Number(0, 30*24)) * time.Hour)
		a.Status = domain.StatusInactive
		a.InactiveAt = &inactiveAt
	}
	return a
}

func fakeCurso(f *gofakeit.Faker, i int, now time.Time, areaIDs []int64) *domain.Curso {
	desc := f.Sentence(10)
	c := &domain.Curso{
		Name:        fmt.Sprintf("%s %d", f.JobTitle(), i),
		Description: &desc,
		Status:      domain.StatusActive,
		CreatedAt:   now.Add(-time.Duration(f.Number(0, 365*24)) * time.Hour),
	}
	// Most cursos belong to an area; some stay detached.
	if len(areaIDs) > 0 && f.Number(0, 9) > 1 {
		c.Area = &domain.AreaRef{ID: areaIDs[f.Number(0, len(areaIDs)-1)]}
	}
	return c
}
