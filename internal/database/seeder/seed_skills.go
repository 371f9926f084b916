package seeder

import (
	"context"
	"fmt"

	"jobscout/internal/database"

	"github.com/google/uuid"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

type seedSkill struct {
	Name     string
	Category string
	Aliases  []string
}

// The starter catalog. Alias spellings matter: extraction matches them
// verbatim against normalized text.
var seedSkills = []seedSkill{
	{Name: "Python", Category: "Languages"},
	{Name: "Java", Category: "Languages"},
	{Name: "C++", Category: "Languages"},
	{Name: "R", Category: "Languages"},
	{Name: "C#", Category: "Languages"},
	{Name: "C", Category: "Languages", Aliases: []string{"ANSI C"}},
	{Name: "Objective-C", Category: "Languages"},
	{Name: "Visual Basic", Category: "Languages"},
	{Name: "Ruby", Category: "Languages"},
	{Name: "Swift", Category: "Languages"},
	{Name: "Go", Category: "Languages"},
	{Name: "Perl", Category: "Languages"},
	{Name: "TypeScript", Category: "Languages"},
	{Name: "MATLAB", Category: "Languages"},

	{Name: "Node.js", Category: "Frameworks"},
	{Name: "Angular", Category: "Frameworks", Aliases: []string{"AngularJS", "Angular.JS"}},
	{Name: "Express.js", Category: "Frameworks", Aliases: []string{"ExpressJS"}},
	{Name: "Flask", Category: "Frameworks"},
	{Name: "Django", Category: "Frameworks"},
	{Name: "Rails", Category: "Frameworks"},
	{Name: "Laravel", Category: "Frameworks"},
	{Name: "React", Category: "Frameworks", Aliases: []string{"ReactJS", "React.JS"}},
	{Name: "Next.js", Category: "Frameworks"},
	{Name: "Svelte", Category: "Frameworks"},
	{Name: "Vue", Category: "Frameworks"},

	{Name: "SQL", Category: "Database Management"},
	{Name: "PostgreSQL", Category: "Database Management"},
	{Name: "NoSQL", Category: "Database Management"},
	{Name: "MongoDB", Category: "Database Management"},
	{Name: "MySQL", Category: "Database Management"},
	{Name: "Oracle", Category: "Database Management"},
	{Name: "SQLite", Category: "Database Management"},
	{Name: "MariaDB", Category: "Database Management"},
	{Name: "Redis", Category: "Database Management"},

	{Name: "JavaScript", Category: "Web Development"},
	{Name: "HTML", Category: "Web Development"},
	{Name: "CSS", Category: "Web Development"},

	{Name: "Git", Category: "Tools"},
	{Name: "Docker", Category: "Tools"},
	{Name: "Google Cloud", Category: "Tools", Aliases: []string{"GCP"}},
	{Name: "Azure", Category: "Tools"},
	{Name: "AWS", Category: "Tools", Aliases: []string{"Amazon Web Services"}},
	{Name: "Shell", Category: "Tools"},
}

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range seedSkills {
		if _, err := tx.Exec(ctx,
			`INSERT INTO skills (id, name, category) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING`,
			uuid.New(), it.Name, it.Category,
		); err != nil {
			return err
		}

		for _, alias := range it.Aliases {
			if _, err := tx.Exec(ctx,
				`INSERT INTO skill_aliases (id, skill_id, name)
				 SELECT $1, s.id, $2 FROM skills s WHERE s.name = $3
				 ON CONFLICT (skill_id, name) DO NOTHING`,
				uuid.New(), alias, it.Name,
			); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
