package sqlstore

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/database"

	"gopkg.in/yaml.v3"
)

//go:embed seed/default.yaml
var defaultSeed []byte

// SeedData is the default content inserted into empty tables
type SeedData struct {
	Profile    *domain.Profile    `yaml:"dadosPessoais"`
	Biography  *domain.Biography  `yaml:"sobre"`
	Contact    *domain.Contact    `yaml:"contato"`
	Education  []domain.Education `yaml:"formacoes"`
	HardSkills []domain.HardSkill `yaml:"hardSkills"`
	SoftSkills []domain.SoftSkill `yaml:"softSkills"`
	Projects   []domain.Project   `yaml:"projetos"`
}

// DefaultSeedData returns the embedded seed document
func DefaultSeedData() (*SeedData, error) {
	return ParseSeedData(defaultSeed)
}

// LoadSeedData reads a seed document from path, or the embedded one when path is empty
func LoadSeedData(path string) (*SeedData, error) {
	if path == "" {
		return DefaultSeedData()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeedData(raw)
}

func ParseSeedData(raw []byte) (*SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}

// Seeder fills empty tables with SeedData
type Seeder struct {
	db   database.Gateway
	data *SeedData
}

func NewSeeder(db database.Gateway, data *SeedData) *Seeder {
	if data == nil {
		data = &SeedData{}
	}
	return &Seeder{db: db, data: data}
}

// Seed inserts the seed rows of every table whose row count is zero and
// returns how many rows it inserted per table. Tables that already hold
// rows are never touched. A failing table does not stop the others; all
// failures are joined into the returned error.
func (s *Seeder) Seed(ctx context.Context) (map[string]int, error) {
	inserted := make(map[string]int)
	var errs []error

	record := func(name string, n int, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("seed %s: %w", name, err))
			return
		}
		if n > 0 {
			inserted[name] = n
		}
	}

	n, err := seedTable(ctx, s.db, ProfileTable, single(s.data.Profile))
	record(ProfileTable.Name, n, err)
	n, err = seedTable(ctx, s.db, BiographyTable, single(s.data.Biography))
	record(BiographyTable.Name, n, err)
	n, err = seedTable(ctx, s.db, ContactTable, single(s.data.Contact))
	record(ContactTable.Name, n, err)
	n, err = seedTable(ctx, s.db, EducationTable, s.data.Education)
	record(EducationTable.Name, n, err)
	n, err = seedTable(ctx, s.db, HardSkillTable, s.data.HardSkills)
	record(HardSkillTable.Name, n, err)
	n, err = seedTable(ctx, s.db, SoftSkillTable, s.data.SoftSkills)
	record(SoftSkillTable.Name, n, err)
	n, err = seedTable(ctx, s.db, ProjectTable, s.data.Projects)
	record(ProjectTable.Name, n, err)

	return inserted, errors.Join(errs...)
}

func seedTable[T any](ctx context.Context, db database.Gateway, table Table[T], rows []T) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	count, err := countRows(ctx, db, table.countSQL())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for i := range rows {
		if _, err := db.Execute(ctx, table.insertSQL(), table.Values(&rows[i])...); err != nil {
			return i, err
		}
	}
	return len(rows), nil
}

func countRows(ctx context.Context, db database.Gateway, query string) (int64, error) {
	count, _, err := database.FetchOne(ctx, db, func(row database.Scanner) (int64, error) {
		var n int64
		err := row.Scan(&n)
		return n, err
	}, query)
	return count, err
}

func single[T any](v *T) []T {
	if v == nil {
		return nil
	}
	return []T{*v}
}
