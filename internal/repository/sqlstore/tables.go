package sqlstore

import "go-portfolio-backend/internal/domain"

var ProfileTable = Table[domain.Profile]{
	Name:    "dados_pessoais",
	Columns: []string{"nome", "descricao"},
	Values: func(v *domain.Profile) []any {
		return []any{v.Name, v.Description}
	},
	Targets: func(v *domain.Profile) []any {
		return []any{&v.ID, &v.Name, &v.Description}
	},
	SetID: func(v *domain.Profile, id int64) { v.ID = id },
}

var BiographyTable = Table[domain.Biography]{
	Name:    "sobre",
	Columns: []string{"apresentacao"},
	Values: func(v *domain.Biography) []any {
		return []any{v.Presentation}
	},
	Targets: func(v *domain.Biography) []any {
		return []any{&v.ID, &v.Presentation}
	},
	SetID: func(v *domain.Biography, id int64) { v.ID = id },
}

var ContactTable = Table[domain.Contact]{
	Name:    "contato",
	Columns: []string{"email", "github", "linkedin"},
	Values: func(v *domain.Contact) []any {
		return []any{v.Email, v.GitHub, v.LinkedIn}
	},
	Targets: func(v *domain.Contact) []any {
		return []any{&v.ID, &v.Email, &v.GitHub, &v.LinkedIn}
	},
	SetID: func(v *domain.Contact, id int64) { v.ID = id },
}

var EducationTable = Table[domain.Education]{
	Name:    "formacoes",
	Columns: []string{"curso", "instituicao", "ano"},
	Values: func(v *domain.Education) []any {
		return []any{v.Course, v.Institution, v.Period}
	},
	Targets: func(v *domain.Education) []any {
		return []any{&v.ID, &v.Course, &v.Institution, &v.Period}
	},
	SetID: func(v *domain.Education, id int64) { v.ID = id },
}

var SoftSkillTable = Table[domain.SoftSkill]{
	Name:    "soft_skills",
	Columns: []string{"habilidade"},
	Values: func(v *domain.SoftSkill) []any {
		return []any{v.Skill}
	},
	Targets: func(v *domain.SoftSkill) []any {
		return []any{&v.ID, &v.Skill}
	},
	SetID: func(v *domain.SoftSkill, id int64) { v.ID = id },
}

var HardSkillTable = Table[domain.HardSkill]{
	Name:    "hard_skills",
	Columns: []string{"nomeHabilidade", "habilidade"},
	Values: func(v *domain.HardSkill) []any {
		return []any{v.Category, v.Skill}
	},
	Targets: func(v *domain.HardSkill) []any {
		return []any{&v.ID, &v.Category, &v.Skill}
	},
	SetID: func(v *domain.HardSkill, id int64) { v.ID = id },
}

var ProjectTable = Table[domain.Project]{
	Name:    "projetos",
	Columns: []string{"titulo", "descricao", "tecnologias"},
	Values: func(v *domain.Project) []any {
		return []any{v.Title, v.Description, v.Technologies}
	},
	Targets: func(v *domain.Project) []any {
		return []any{&v.ID, &v.Title, &v.Description, &v.Technologies}
	},
	SetID: func(v *domain.Project, id int64) { v.ID = id },
}
