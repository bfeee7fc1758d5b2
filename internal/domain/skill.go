package domain

// Skill rows are shared reference data: jobs attach to them through link
// tables and never own them. Rows are only created through the repository's
// get-or-create path, keyed by (language, level) or by value.

type LanguageSkill struct {
	ID       int64  `json:"-"`
	Language string `json:"language"`
	Level    string `json:"level"`
}

type TechnicalSkill struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

type PersonalSkill struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}
