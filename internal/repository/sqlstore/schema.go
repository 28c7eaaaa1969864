package sqlstore

import (
	"context"
	"fmt"

	"go-portfolio-backend/pkg/database"
)

// Schema is implemented by every Table regardless of its entity type
type Schema interface {
	TableName() string
	CreateStatement(d database.Dialect) string
}

// Tables lists the portfolio tables in creation order
func Tables() []Schema {
	return []Schema{
		ProfileTable,
		BiographyTable,
		EducationTable,
		SoftSkillTable,
		HardSkillTable,
		ProjectTable,
		ContactTable,
	}
}

// EnsureSchema creates any missing table. Existing tables and rows are left alone.
func EnsureSchema(ctx context.Context, db database.Gateway) error {
	for _, t := range Tables() {
		if _, err := db.Execute(ctx, t.CreateStatement(db.Dialect())); err != nil {
			return fmt.Errorf("create table %s: %w", t.TableName(), err)
		}
	}
	return nil
}
