package entity

// Psychologist is an entry of the clinic's fixed roster. The roster is
// not stored; appointments reference psychologists by name.
type Psychologist struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

var psychologistRoster = []Psychologist{
	{ID: 1, Name: "Altamirano Ángeles Erick", Specialty: "Psicólogo Clínico"},
	{ID: 2, Name: "Córdova Ruvalcaba Mario Antonio", Specialty: "Psicoterapeuta"},
	{ID: 3, Name: "Flores Ríos Yolotli Zacnite", Specialty: "Psicoterapeuta"},
	{ID: 4, Name: "Ortega Marín María Eugenia", Specialty: "Psicóloga laboral"},
	{ID: 5, Name: "Ruvalcaba Gaona Iliana", Specialty: "Terapeuta Familiar y de Pareja"},
}

// PsychologistRoster returns a copy of the roster.
func PsychologistRoster() []Psychologist {
	roster := make([]Psychologist, len(psychologistRoster))
	copy(roster, psychologistRoster)
	return roster
}

// KnownPsychologist reports whether name matches a roster entry.
func KnownPsychologist(name string) bool {
	for _, p := range psychologistRoster {
		if p.Name == name {
			return true
		}
	}
	return false
}
