package seedmodels

import "encoding/json"

// SeedQuestion is one question body in wire format. organizationId and examId are filled in by the seeder.
type SeedQuestion map[string]json.RawMessage

// SeedExam defines an exam and its questions in the JSON seed file.
type SeedExam struct {
	Exam      map[string]json.RawMessage `json:"exam"`
	Questions []SeedQuestion             `json:"questions"`
}

// SeedOrganization defines an organization and its exams in the JSON seed file.
type SeedOrganization struct {
	Organization map[string]json.RawMessage `json:"organization"`
	Exams        []SeedExam                 `json:"exams"`
}
