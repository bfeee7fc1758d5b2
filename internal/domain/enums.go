package domain

// Choice is a value/label pair served by the enumeration endpoints.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var languageChoices = []Choice{
	{Value: "English", Label: "English"},
	{Value: "Spanish", Label: "Spanish"},
	{Value: "German", Label: "German"},
	{Value: "French", Label: "French"},
	{Value: "Italian", Label: "Italian"},
	{Value: "Portuguese", Label: "Portuguese"},
	{Value: "Dutch", Label: "Dutch"},
	{Value: "Polish", Label: "Polish"},
	{Value: "Russian", Label: "Russian"},
	{Value: "Mandarin", Label: "Mandarin"},
	{Value: "Japanese", Label: "Japanese"},
	{Value: "Arabic", Label: "Arabic"},
}

var languageLevelChoices = []Choice{
	{Value: "Beginner", Label: "Beginner"},
	{Value: "Intermediate", Label: "Intermediate"},
	{Value: "Advanced", Label: "Advanced"},
	{Value: "Fluent", Label: "Fluent"},
	{Value: "Native", Label: "Native"},
}

var technicalSkillChoices = []Choice{
	{Value: "Python", Label: "Python"},
	{Value: "JavaScript", Label: "JavaScript"},
	{Value: "TypeScript", Label: "TypeScript"},
	{Value: "Go", Label: "Go"},
	{Value: "Java", Label: "Java"},
	{Value: "C#", Label: "C#"},
	{Value: "SQL", Label: "SQL"},
	{Value: "React", Label: "React"},
	{Value: "Django", Label: "Django"},
	{Value: "Docker", Label: "Docker"},
	{Value: "Kubernetes", Label: "Kubernetes"},
	{Value: "AWS", Label: "AWS"},
}

var personalSkillChoices = []Choice{
	{Value: "Communication", Label: "Communication"},
	{Value: "Teamwork", Label: "Teamwork"},
	{Value: "Leadership", Label: "Leadership"},
	{Value: "Problem Solving", Label: "Problem Solving"},
	{Value: "Adaptability", Label: "Adaptability"},
	{Value: "Time Management", Label: "Time Management"},
	{Value: "Creativity", Label: "Creativity"},
	{Value: "Critical Thinking", Label: "Critical Thinking"},
}

func LanguageChoices() []Choice       { return languageChoices }
func LanguageLevelChoices() []Choice  { return languageLevelChoices }
func TechnicalSkillChoices() []Choice { return technicalSkillChoices }
func PersonalSkillChoices() []Choice  { return personalSkillChoices }

func containsChoice(choices []Choice, value string) bool {
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}

func IsValidLanguage(value string) bool       { return containsChoice(languageChoices, value) }
func IsValidLanguageLevel(value string) bool  { return containsChoice(languageLevelChoices, value) }
func IsValidTechnicalSkill(value string) bool { return containsChoice(technicalSkillChoices, value) }
func IsValidPersonalSkill(value string) bool  { return containsChoice(personalSkillChoices, value) }
