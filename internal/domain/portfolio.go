package domain

// Profile is the owner's headline (table dados_pessoais, singleton)
type Profile struct {
	ID          int64   `json:"id,omitempty" yaml:"-"`
	Name        *string `json:"nome" yaml:"nome"`
	Description *string `json:"descricao" yaml:"descricao"`
}

// Biography is the free-text presentation (table sobre, singleton)
type Biography struct {
	ID           int64   `json:"id,omitempty" yaml:"-"`
	Presentation *string `json:"apresentacao" yaml:"apresentacao"`
}

// Contact holds the public contact links (table contato, singleton)
type Contact struct {
	ID       int64   `json:"id,omitempty" yaml:"-"`
	Email    *string `json:"email" yaml:"email"`
	GitHub   *string `json:"github" yaml:"github"`
	LinkedIn *string `json:"linkedin" yaml:"linkedin"`
}

// Education is one course entry (table formacoes)
type Education struct {
	ID          int64   `json:"id" yaml:"-"`
	Course      *string `json:"curso" yaml:"curso"`
	Institution *string `json:"instituicao" yaml:"instituicao"`
	Period      *string `json:"ano" yaml:"ano"`
}

// SoftSkill (table soft_skills)
type SoftSkill struct {
	ID    int64   `json:"id" yaml:"-"`
	Skill *string `json:"habilidade" yaml:"habilidade"`
}

// HardSkill groups technical skills under a category (table hard_skills)
type HardSkill struct {
	ID       int64   `json:"id" yaml:"-"`
	Category *string `json:"nomeHabilidade" yaml:"nomeHabilidade"`
	Skill    *string `json:"habilidade" yaml:"habilidade"`
}

// Project is a showcased piece of work (table projetos)
type Project struct {
	ID           int64   `json:"id" yaml:"-"`
	Title        *string `json:"titulo" yaml:"titulo"`
	Description  *string `json:"descricao" yaml:"descricao"`
	Technologies *string `json:"tecnologias" yaml:"tecnologias"`
}

// Portfolio aggregates every entity for the landing page
type Portfolio struct {
	Profile    Profile     `json:"dadosPessoais"`
	Biography  Biography   `json:"sobre"`
	Education  []Education `json:"formacoes"`
	SoftSkills []SoftSkill `json:"softSkills"`
	HardSkills []HardSkill `json:"hardSkills"`
	Projects   []Project   `json:"projetos"`
	Contact    Contact     `json:"contato"`
}

// Text returns a pointer to s
func Text(s string) *string {
	return &s
}

// EmptyProfile is served when no profile row exists
func EmptyProfile() Profile {
	return Profile{Name: Text(""), Description: Text("")}
}

func EmptyBiography() Biography {
	return Biography{Presentation: Text("")}
}

func EmptyContact() Contact {
	return Contact{Email: Text(""), GitHub: Text(""), LinkedIn: Text("")}
}
