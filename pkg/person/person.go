// Package person holds the records the completion indexes are built from and
// loads them from roster files.
package person

import (
	"regexp"
	"strconv"
)

// Title is a role held by a person for one period (a year).
type Title struct {
	Title  string `json:"title" msgpack:"title"`
	Period int    `json:"period" msgpack:"period"`
}

// Person is a single roster entry. Titles keep their roster order.
type Person struct {
	ID      int     `json:"id" msgpack:"id"`
	Name    string  `json:"name" msgpack:"name"`
	Str     string  `json:"str" msgpack:"str"`
	Street  string  `json:"street,omitempty" msgpack:"street,omitempty"`
	City    string  `json:"city,omitempty" msgpack:"city,omitempty"`
	Country string  `json:"country,omitempty" msgpack:"country,omitempty"`
	Titles  []Title `json:"titles" msgpack:"titles"`
}

var firstNamePattern = regexp.MustCompile(`\S+ `)

// FirstName returns the first name token of p including its trailing space,
// or "" when the name has a single token.
func FirstName(p Person) string {
	return firstNamePattern.FindString(p.Name)
}

// IDString is the textual form of the id, as it appears in input fields.
func (p Person) IDString() string {
	return strconv.Itoa(p.ID)
}

// PeriodSuffix returns the last two digits of the period, zero padded.
func (t Title) PeriodSuffix() string {
	n := t.Period % 100
	if n < 0 {
		n = -n
	}
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
