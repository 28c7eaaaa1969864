package sqlstore

import (
	"testing"

	"go-portfolio-backend/pkg/database"

	"github.com/stretchr/testify/assert"
)

func TestTableStatements(t *testing.T) {
	tbl := HardSkillTable

	assert.Equal(t,
		`CREATE TABLE IF NOT EXISTS "hard_skills" ("id" BIGSERIAL PRIMARY KEY, "nomeHabilidade" TEXT, "habilidade" TEXT)`,
		tbl.CreateStatement(database.DialectPostgres))
	assert.Equal(t,
		`CREATE TABLE IF NOT EXISTS "hard_skills" ("id" INTEGER PRIMARY KEY AUTOINCREMENT, "nomeHabilidade" TEXT, "habilidade" TEXT)`,
		tbl.CreateStatement(database.DialectSQLite))
	assert.Equal(t, `SELECT "id", "nomeHabilidade", "habilidade" FROM "hard_skills"`, tbl.selectSQL())
	assert.Equal(t, `INSERT INTO "hard_skills" ("nomeHabilidade", "habilidade") VALUES (?, ?)`, tbl.insertSQL())
	assert.Equal(t, `UPDATE "hard_skills" SET "nomeHabilidade" = ?, "habilidade" = ? WHERE id = ?`, tbl.updateSQL("id = ?"))
}

func TestTablesCoverEveryEntity(t *testing.T) {
	names := make([]string, 0, 7)
	for _, s := range Tables() {
		names = append(names, s.TableName())
	}
	assert.ElementsMatch(t, []string{
		"dados_pessoais", "sobre", "contato", "formacoes", "soft_skills", "hard_skills", "projetos",
	}, names)
}
