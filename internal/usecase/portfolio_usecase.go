package usecase

import (
	"context"

	"go-portfolio-backend/internal/domain"

	"golang.org/x/sync/errgroup"
)

// PortfolioSources are the resources the aggregated view reads from
type PortfolioSources struct {
	Profile    domain.SingletonUsecase[domain.Profile]
	Biography  domain.SingletonUsecase[domain.Biography]
	Contact    domain.SingletonUsecase[domain.Contact]
	Education  domain.CollectionUsecase[domain.Education]
	SoftSkills domain.CollectionUsecase[domain.SoftSkill]
	HardSkills domain.CollectionUsecase[domain.HardSkill]
	Projects   domain.CollectionUsecase[domain.Project]
}

type portfolioUsecase struct {
	src PortfolioSources
}

// NewPortfolioUsecase creates the aggregated view composer
func NewPortfolioUsecase(src PortfolioSources) domain.PortfolioUsecase {
	return &portfolioUsecase{src: src}
}

// GetPortfolio reads all seven resources concurrently. The first failure
// cancels the remaining reads and is returned as is.
func (uc *portfolioUsecase) GetPortfolio(ctx context.Context) (*domain.Portfolio, error) {
	var p domain.Portfolio
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v, err := uc.src.Profile.Get(ctx)
		if err == nil {
			p.Profile = *v
		}
		return err
	})
	g.Go(func() error {
		v, err := uc.src.Biography.Get(ctx)
		if err == nil {
			p.Biography = *v
		}
		return err
	})
	g.Go(func() error {
		v, err := uc.src.Contact.Get(ctx)
		if err == nil {
			p.Contact = *v
		}
		return err
	})
	g.Go(func() (err error) {
		p.Education, err = uc.src.Education.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		p.SoftSkills, err = uc.src.SoftSkills.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		p.HardSkills, err = uc.src.HardSkills.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		p.Projects, err = uc.src.Projects.List(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &p, nil
}
