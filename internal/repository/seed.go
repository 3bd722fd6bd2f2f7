// Package repository holds what the SQL contact stores share.
package repository

import (
	"database/sql"
	"fmt"

	"partyplanner/internal/domain"
)

// SeedContacts is the initial contact list loaded by `server -seed`.
var SeedContacts = []domain.Contact{
	{ID: 1, Name: "A. Coots", Email: "acoots@thesmythgroup.com"},
	{ID: 2, Name: "B. Liles", Email: "bliles@thesmythgroup.com"},
	{ID: 3, Name: "C. Wall", Email: "cwall@thesmythgroup.com"},
	{ID: 4, Name: "C. Leyva", Email: "cleyva@thesmythgroup.com"},
	{ID: 5, Name: "D. Phillips", Email: "dphillips@thesmythgroup.com"},
	{ID: 6, Name: "F. Reyes", Email: "freyes@thesmythgroup.com"},
	{ID: 7, Name: "G. Pierce", Email: "gpierce@thesmythgroup.com"},
	{ID: 8, Name: "J. Smyth", Email: "jsmyth@thesmythgroup.com"},
	{ID: 9, Name: "J. Smellie", Email: "jsmellie@thesmythgroup.com"},
	{ID: 10, Name: "J. Fahrenkrug", Email: "jfahrenkrug@thesmythgroup.com"},
	{ID: 11, Name: "J. Jenkins", Email: "jjenkins@thesmythgroup.com"},
	{ID: 12, Name: "J. Van Hollebeke", Email: "jvanhollebeke@thesmythgroup.com"},
	{ID: 13, Name: "J. Stanford", Email: "jstanford@thesmythgroup.com"},
	{ID: 14, Name: "J. Lettau", Email: "jlettau@thesmythgroup.com"},
	{ID: 15, Name: "M. Hershey", Email: "mhershey@thesmythgroup.com"},
	{ID: 16, Name: "M. Niehues", Email: "mniehues@thesmythgroup.com"},
	{ID: 17, Name: "P. Bredenberg", Email: "pbredenberg@thesmythgroup.com"},
	{ID: 18, Name: "P. Yi", Email: "pyi@thesmythgroup.com"},
	{ID: 19, Name: "R. Alhawash", Email: "ralhawash@thesmythgroup.com"},
	{ID: 20, Name: "U. Rodríguez", Email: "urodriguez@thesmythgroup.com"},
}

// ContactsSchema describes the contacts table. It is also shown to the model by
// the assistant contact source.
const ContactsSchema = `CREATE TABLE IF NOT EXISTS contacts (
	id INTEGER PRIMARY KEY,
	full_name TEXT NOT NULL,
	email TEXT NOT NULL
)`

// ScanContacts reads id, name, email rows. Any other column count is reported as
// malformed model output, since only generated queries can select something else.
func ScanContacts(rows *sql.Rows) ([]*domain.Contact, error) {
	defer rows.Close()
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if len(cols) != 3 {
		return nil, fmt.Errorf("%w: query must select id, name, email; got columns %v", domain.ErrMalformedModelOutput, cols)
	}
	var contacts []*domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return contacts, nil
}
