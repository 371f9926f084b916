package extract

import (
	"testing"

	"jobscout/internal/domain/skill"

	"github.com/google/uuid"
)

var (
	pythonID = uuid.New()
	awsID    = uuid.New()
	javaID   = uuid.New()
	jsID     = uuid.New()
	gcloudID = uuid.New()
)

func testCatalog() []skill.Skill {
	return []skill.Skill{
		{ID: pythonID, Name: "Python", Category: "Languages"},
		{ID: javaID, Name: "Java", Category: "Languages"},
		{ID: jsID, Name: "JavaScript", Category: "Web Development"},
		{ID: awsID, Name: "AWS", Category: "Tools", Aliases: []string{"Amazon Web Services"}},
		{ID: gcloudID, Name: "Google Cloud", Category: "Tools", Aliases: []string{"GCP"}},
	}
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestMatchSkills_NameAndAlias(t *testing.T) {
	text := Normalize("Python developer, experience with Amazon Web Services and GCP.")
	ids := MatchSkills(text, testCatalog())

	if len(ids) != 3 {
		t.Fatalf("expected 3 skills, got %d: %v", len(ids), ids)
	}
	for _, want := range []uuid.UUID{pythonID, awsID, gcloudID} {
		if !containsID(ids, want) {
			t.Fatalf("missing skill id %s", want)
		}
	}
}

func TestMatchSkills_IDCollectedOnce(t *testing.T) {
	text := Normalize("AWS, also known as Amazon Web Services. AWS everywhere.")
	ids := MatchSkills(text, testCatalog())

	if len(ids) != 1 || ids[0] != awsID {
		t.Fatalf("expected exactly [aws], got %v", ids)
	}
}

func TestMatchSkills_NoSubstringFalsePositive(t *testing.T) {
	text := Normalize("Pure JavaScript role.")
	ids := MatchSkills(text, testCatalog())

	if containsID(ids, javaID) {
		t.Fatalf("java must not match inside javascript")
	}
	if !containsID(ids, jsID) {
		t.Fatalf("javascript should match")
	}
}

func TestMatchSkills_Empty(t *testing.T) {
	if ids := MatchSkills(Normalize(""), testCatalog()); len(ids) != 0 {
		t.Fatalf("empty text: expected no skills, got %v", ids)
	}
	if ids := MatchSkills(Normalize("Python and AWS"), nil); len(ids) != 0 {
		t.Fatalf("empty catalog: expected no skills, got %v", ids)
	}
}
