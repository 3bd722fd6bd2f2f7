package services

import (
	"fmt"
	"strings"

	"partyplanner/internal/domain"
)

const themeCount = 10

const themesPromptTemplate = `Generate a list of %d party themes.

Keep the themes relevant to the size of the party and the age of the group.
The party should be for %s.
%s
The themes should be creative and engaging.
The themes should be appropriate and relevant for the age group of the party guests and the exclusivity of the party.
A theme can reference an era, such as a 70's dress up party, or a movie.

Return the result as a JSON string without any other text.
The JSON must be valid and must conform to the following structure:
{"themes": [{"name": "the party theme", "description": "a very short description of the party theme"}, ...]}`

// buildThemesPrompt embeds the age groups ("all ages" when empty) and, unless the
// party is mixed, an exclusivity sentence.
func buildThemesPrompt(ageGroups []string, exclusivity domain.Exclusivity) string {
	ages := "all ages"
	if groups := nonEmpty(ageGroups); len(groups) > 0 {
		ages = strings.Join(groups, ", ")
	}
	exclusive := ""
	if exclusivity != "" && exclusivity != domain.ExclusivityMixed {
		exclusive = fmt.Sprintf("The party is for %s.\n", exclusivity)
	}
	return fmt.Sprintf(themesPromptTemplate, themeCount, ages, exclusive)
}

// buildPlanPrompt lists one "name (email: address)" line per guest, in order.
func buildPlanPrompt(theme string, guests []domain.Guest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a plan for a party with the theme %q. The plan should:\n\n", theme)
	b.WriteString("Include a very simple and fun list of activities to do at the party. Make the list proportionate to the number of people invited and the age of the group.\n")
	b.WriteString("Include a simple list of things to bring to the party: food, drinks and other things needed for the theme. Make the list proportionate to the number of people invited and assign who is bringing what. Be specific and fair. Here is the list of guests:\n\n")
	for _, g := range guests {
		b.WriteString(guestLine(g))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\nThe size of the party is %d guests.\n", len(guests))
	b.WriteString("The response should be plain text that looks like this:\n")
	fmt.Fprintf(&b, "Party Plan for %s:\n", theme)
	b.WriteString("Things to do:\n- activity 1\n- activity 2\n\n")
	b.WriteString("Things to bring:\n- item 1: assigned guest name and email\n- item 2: assigned guest name and email\n")
	return b.String()
}

func guestLine(g domain.Guest) string {
	return fmt.Sprintf("%s (email: %s)", g.Name, g.Email)
}

const contactsSQLPromptTemplate = `You are a SQLite expert. Given the table below, write one SQLite SELECT statement that answers the request.
Select exactly the columns id, full_name and email, in that order, and order the rows by id.
Return only the SQL statement, without explanation and without code fences.

Table:
%s

Request: get the top %d contacts from the database, skipping the first %d.`

func buildContactsSQLPrompt(schema string, params domain.PaginationParams) string {
	return fmt.Sprintf(contactsSQLPromptTemplate, schema, params.PageSize, params.Offset())
}

const contactsFormatPromptTemplate = `The query %q returned these rows (id | full_name | email):
%s
Rewrite the result so that the answer has no text other than a JSON string that strictly adheres to the following schema:
[ { "id": 1, "name": "name", "email": "email" }, ... ]`

func buildContactsFormatPrompt(query string, rows []*domain.Contact) string {
	var b strings.Builder
	for _, c := range rows {
		fmt.Fprintf(&b, "%d | %s | %s\n", c.ID, c.Name, c.Email)
	}
	return fmt.Sprintf(contactsFormatPromptTemplate, query, b.String())
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
