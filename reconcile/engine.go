// Package reconcile merges the compiled-in seed catalog with whatever the
// backend currently holds. The contract is that the public site always
// renders: any fetch failure degrades silently to seed content and never
// escapes this package.
package reconcile

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/TianMHDev/portfolio-panel/models"
	"github.com/TianMHDev/portfolio-panel/seed"
)

// Separator between tool names in the currently-learning display string.
const learningSeparator = " ・ "

// Snapshot is the fully reconciled public view state.
type Snapshot struct {
	Hero     models.Hero           `json:"hero"`
	About    models.About          `json:"about"`
	Stack    []models.TechCategory `json:"stack"`
	Projects []models.Project      `json:"projects"`
	Mindset  []models.MindsetItem  `json:"mindset"`
}

// Fetcher is the slice of the gateway the engine needs.
type Fetcher interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProfile(ctx context.Context) (*models.Profile, error)
	ListTools(ctx context.Context) ([]models.LearningTool, error)
}

type Engine struct {
	upstream Fetcher
	logger   zerolog.Logger
}

func New(upstream Fetcher) *Engine {
	return &Engine{
		upstream: upstream,
		logger:   log.With().Str("component", "reconcileEngine").Logger(),
	}
}

// seedSnapshot returns the untouched fallback state.
func seedSnapshot() Snapshot {
	return Snapshot{
		Hero:     seed.Hero(),
		About:    seed.About(),
		Stack:    seed.TechStack(),
		Projects: seed.Projects(),
		Mindset:  seed.Mindset(),
	}
}

// Load issues the three backend fetches concurrently and folds the results
// over the seed catalog. The batch is all-or-nothing: if any fetch fails, the
// returned snapshot equals the seed values exactly. Completion order between
// the three fetches is irrelevant; results are only combined after all three
// are in. Cancelling ctx abandons the batch.
func (e *Engine) Load(ctx context.Context) Snapshot {
	snap := seedSnapshot()

	var (
		remote  []models.Project
		profile *models.Profile
		tools   []models.LearningTool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		remote, err = e.upstream.ListProjects(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = e.upstream.GetProfile(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tools, err = e.upstream.ListTools(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		e.logger.Warn().Err(err).Msg("backend sync failed, serving seed content")
		return snap
	}

	if profile != nil {
		applyProfile(&snap, *profile)
	}

	snap.Projects = MergeProjects(snap.Projects, remote)

	if len(tools) > 0 {
		BucketTools(snap.Stack, tools)
		applyLearning(&snap, tools)
	}

	return snap
}

// applyProfile fully overwrites the seed hero and about fields; this is a
// replacement, not a merge.
func applyProfile(snap *Snapshot, profile models.Profile) {
	snap.Hero = models.Hero{
		Name:      profile.Name,
		Role:      profile.Role,
		Manifesto: profile.Manifesto,
		Location:  profile.Location,
		Status:    profile.Status,
	}
	snap.About = models.About{
		Title:             profile.AboutTitle,
		Description:       profile.AboutDescription,
		EnglishLevel:      profile.EnglishLevel,
		CurrentlyLearning: profile.CurrentlyLearning,
		ProfileImage:      profile.ProfileImage,
	}
}

// applyLearning folds LEARNING-status tools into the about section and the
// hero status line. With zero LEARNING tools the profile-derived values are
// left exactly as they are.
func applyLearning(snap *Snapshot, tools []models.LearningTool) {
	names := LearningNames(tools)
	if len(names) == 0 {
		return
	}

	joined := strings.Join(names, learningSeparator)
	snap.About.CurrentlyLearning = joined
	snap.Hero.Status = "ACTUALMENTE: APRENDIENDO " + strings.ToUpper(joined)
}
