/*
Package complete binds a person autocomplete field to a PersonIndex.

A Controller tracks three things for one field: the bound value (the selected
person's id, as a hidden form field would hold it), the visible input text and
the display string of the selected person. It starts by resolving an initial
selection from the value or the field's hints, then re-resolves on each
keystroke.

	c, _ := complete.New(idx, "", complete.Hint{Name: "Jens Hansen"})
	ev := c.Update("jens")
	if ev.Kind == complete.Selected {
		fmt.Println(ev.Person.ID, ev.Person.Str)
	}

Controllers only select among existing persons and never modify them.
*/
package complete

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tk-it/personcomplete/pkg/index"
	"github.com/tk-it/personcomplete/pkg/person"
)

// Hint is partial information about who a field should start out as.
type Hint struct {
	Name  string `json:"name,omitempty" msgpack:"name,omitempty"`
	Title string `json:"title,omitempty" msgpack:"title,omitempty"`
}

// Kind says what a resolution did to the field.
type Kind int

const (
	Unchanged Kind = iota
	Cleared
	Selected
)

func (k Kind) String() string {
	switch k {
	case Cleared:
		return "cleared"
	case Selected:
		return "selected"
	}
	return "unchanged"
}

// Event is emitted on each resolution. Person is set for Selected.
type Event struct {
	Kind   Kind
	Person person.Person
}

// titleHint matches role codes with a four digit year, like "form 2019".
var titleHint = regexp.MustCompile(`(cerm|form|inka|ka..|nf|pr|sekr|vc|fu..) \d\d(\d\d)`)

// Controller is the state of one autocomplete field. It is not safe for
// concurrent use.
type Controller struct {
	index    *index.PersonIndex
	hint     Hint
	value    string
	input    string
	display  string
	selected bool
	current  person.Person
}

// New binds a field with current value and hint, and resolves its initial
// selection.
func New(idx *index.PersonIndex, value string, hint Hint) (*Controller, Event) {
	c := &Controller{index: idx, value: value, hint: hint}
	return c, c.Initialize()
}

// Initialize resolves the initial selection: by id from the current value,
// then by the name hint, then by the title hint.
func (c *Controller) Initialize() Event {
	if p, ok := c.personByValue(); ok {
		c.bind(p)
		c.input = p.IDString()
		return Event{Kind: Selected, Person: p}
	}
	if p, ok := c.fromName(); ok {
		log.Debugf("Field initialized from name hint %q: %s", c.hint.Name, p.Name)
		c.bind(p)
		c.input = p.IDString()
		return Event{Kind: Selected, Person: p}
	}
	if p, ok := c.fromTitle(); ok {
		log.Debugf("Field initialized from title hint %q: %s", c.hint.Title, p.Name)
		c.bind(p)
		c.input = p.IDString()
		return Event{Kind: Selected, Person: p}
	}
	return Event{Kind: Unchanged}
}

func (c *Controller) fromName() (person.Person, bool) {
	return c.index.Person(index.Lookup(c.index, c.hint.Name))
}

// fromTitle looks up the title hint and accepts the result only when the
// found person shares the hint name's first name.
func (c *Controller) fromTitle() (person.Person, bool) {
	if c.hint.Title == "" {
		return person.Person{}, false
	}
	mo := titleHint.FindStringSubmatch(c.hint.Title)
	if mo == nil {
		return person.Person{}, false
	}
	code := strings.ReplaceAll(mo[1], "$", "S")
	p, ok := c.index.Person(index.Lookup(c.index, code+mo[2]))
	if !ok {
		return person.Person{}, false
	}
	first := person.FirstName(p)
	if first == "" || !strings.HasPrefix(c.hint.Name, first) {
		log.Debugf("Rejected title hint %q: %s does not match name hint %q", c.hint.Title, p.Name, c.hint.Name)
		return person.Person{}, false
	}
	return p, true
}

// Update re-resolves the field from the visible input. Empty input clears the
// selection; input that matches nobody leaves it as is.
func (c *Controller) Update(input string) Event {
	c.input = input
	v := strings.TrimSpace(input)
	if v == "" {
		c.clear()
		return Event{Kind: Cleared}
	}
	p, ok := c.index.Person(index.Lookup(c.index, v))
	if !ok {
		return Event{Kind: Unchanged}
	}
	c.bind(p)
	return Event{Kind: Selected, Person: p}
}

// Blur resyncs the visible input to the id of the bound person.
func (c *Controller) Blur() {
	if p, ok := c.personByValue(); ok {
		c.input = p.IDString()
	}
}

func (c *Controller) personByValue() (person.Person, bool) {
	id, ok := index.ParseID(c.value)
	if !ok {
		return person.Person{}, false
	}
	return c.index.ByID(id)
}

func (c *Controller) bind(p person.Person) {
	c.value = p.IDString()
	c.display = p.Str
	c.current = p
	c.selected = true
}

func (c *Controller) clear() {
	c.value = ""
	c.display = ""
	c.current = person.Person{}
	c.selected = false
}

// Value is the bound value: the selected id, or "".
func (c *Controller) Value() string {
	return c.value
}

// Input is the visible input text.
func (c *Controller) Input() string {
	return c.input
}

// Display is the display string of the selected person.
func (c *Controller) Display() string {
	return c.display
}

// Selected returns the selected person.
func (c *Controller) Selected() (person.Person, bool) {
	return c.current, c.selected
}
