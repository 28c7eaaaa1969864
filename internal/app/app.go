// Package app builds the repository and usecase graph over a database gateway.
package app

import (
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/repository/sqlstore"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/database"
)

// NewSources wires one usecase per portfolio resource
func NewSources(db database.Gateway) usecase.PortfolioSources {
	return usecase.PortfolioSources{
		Profile:   usecase.NewSingletonUsecase(sqlstore.NewSingletonRepository(db, sqlstore.ProfileTable), domain.EmptyProfile),
		Biography: usecase.NewSingletonUsecase(sqlstore.NewSingletonRepository(db, sqlstore.BiographyTable), domain.EmptyBiography),
		Contact:   usecase.NewSingletonUsecase(sqlstore.NewSingletonRepository(db, sqlstore.ContactTable), domain.EmptyContact),

		Education:  usecase.NewCollectionUsecase(sqlstore.NewCollectionRepository(db, sqlstore.EducationTable), "Formação não encontrada"),
		SoftSkills: usecase.NewCollectionUsecase(sqlstore.NewCollectionRepository(db, sqlstore.SoftSkillTable), "Soft skill não encontrada"),
		HardSkills: usecase.NewCollectionUsecase(sqlstore.NewCollectionRepository(db, sqlstore.HardSkillTable), "Hard skill não encontrada"),
		Projects:   usecase.NewCollectionUsecase(sqlstore.NewCollectionRepository(db, sqlstore.ProjectTable), "Projeto não encontrado"),
	}
}
