package complete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tk-it/personcomplete/pkg/index"
	"github.com/tk-it/personcomplete/pkg/person"
)

func newIndex(t *testing.T, persons []person.Person) *index.PersonIndex {
	t.Helper()
	idx, err := index.NewPersonIndex(persons)
	require.NoError(t, err)
	return idx
}

func board() []person.Person {
	return []person.Person{
		{ID: 3, Name: "Peter Nielsen", Str: "Peter Nielsen (FORM)", Titles: []person.Title{{Title: "FORM", Period: 2019}}},
		{ID: 4, Name: "Mette Holm", Str: "Mette Holm (KASS)", Titles: []person.Title{{Title: "KASS", Period: 2019}}},
		{ID: 5, Name: "Jens Hansen", Str: "Jens Hansen"},
	}
}

func TestInitialize(t *testing.T) {
	testCases := []struct {
		persons     []person.Person
		value       string
		hint        Hint
		kind        Kind
		expectedID  int
		description string
	}{
		{board(), "4", Hint{Name: "Jens Hansen"}, Selected, 4, "Id value beats hints"},
		{board(), "", Hint{Name: "Jens Hansen"}, Selected, 5, "Name hint"},
		{board(), "abc", Hint{Name: "Jens Hansen"}, Selected, 5, "Unparseable value falls through"},
		{board(), "99", Hint{Name: "Jens Hansen"}, Selected, 5, "Unknown id falls through"},
		{board()[:2], "", Hint{Name: "Jens Hansen", Title: "form 2019"}, Unchanged, 0, "Title holder has another first name"},
		{board()[:2], "", Hint{Name: "Peter Nielsen-Olsen", Title: "form 2019"}, Selected, 3, "Title holder shares the first name"},
		{board()[:2], "", Hint{Name: "Mette H.-Holm", Title: "ka$$ 2019"}, Selected, 4, "Dollar signs read as S"},
		{board()[:2], "", Hint{Name: "Peter Nielsen-Olsen", Title: "formand 19"}, Unchanged, 0, "Title hint without a year"},
		{board()[:2], "", Hint{Title: "form 2019"}, Unchanged, 0, "Title hint without a name"},
		{board(), "", Hint{}, Unchanged, 0, "No information"},
		{nil, "1", Hint{Name: "Jens"}, Unchanged, 0, "Empty roster"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			c, ev := New(newIndex(t, tc.persons), tc.value, tc.hint)
			assert.Equal(t, tc.kind, ev.Kind)

			p, ok := c.Selected()
			assert.Equal(t, tc.kind == Selected, ok)
			if tc.kind == Selected {
				assert.Equal(t, tc.expectedID, ev.Person.ID)
				assert.Equal(t, tc.expectedID, p.ID)
				assert.Equal(t, p.IDString(), c.Value())
				assert.Equal(t, p.IDString(), c.Input())
				assert.Equal(t, p.Str, c.Display())
			} else {
				assert.Equal(t, tc.value, c.Value())
				assert.Empty(t, c.Display())
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	idx := newIndex(t, []person.Person{
		{ID: 1, Name: "Ann Olsen", Str: "Ann Olsen"},
		{ID: 2, Name: "Ann Berg", Str: "Ann Berg"},
	})
	c, ev := New(idx, "", Hint{})
	require.Equal(t, Unchanged, ev.Kind)

	ev = c.Update("an")
	assert.Equal(t, Selected, ev.Kind)
	assert.Equal(t, 1, ev.Person.ID)
	assert.Equal(t, "1", c.Value())
	assert.Equal(t, "Ann Olsen", c.Display())
	assert.Equal(t, "an", c.Input())

	ev = c.Update(" ann b ")
	assert.Equal(t, Selected, ev.Kind)
	assert.Equal(t, 2, ev.Person.ID)

	ev = c.Update("zzz")
	assert.Equal(t, Unchanged, ev.Kind)
	assert.Equal(t, "2", c.Value(), "no match keeps the selection")

	ev = c.Update("   ")
	assert.Equal(t, Cleared, ev.Kind)
	assert.Equal(t, "", c.Value())
	assert.Equal(t, "", c.Display())
	_, ok := c.Selected()
	assert.False(t, ok)
}

func TestBlur(t *testing.T) {
	idx := newIndex(t, board())
	c, _ := New(idx, "", Hint{})

	c.Update("mette")
	assert.Equal(t, "mette", c.Input())
	c.Blur()
	assert.Equal(t, "4", c.Input())
	assert.Equal(t, "4", c.Value())

	c.Update("")
	c.Blur()
	assert.Equal(t, "", c.Input(), "nothing to resync after clearing")
}

func TestControllerLeavesPersonsAlone(t *testing.T) {
	persons := board()
	c, _ := New(newIndex(t, persons), "", Hint{Name: "Jens Hansen"})
	c.Update("peter")
	c.Update("")
	c.Blur()

	assert.Equal(t, board(), persons)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "selected", Selected.String())
	assert.Equal(t, "cleared", Cleared.String())
	assert.Equal(t, "unchanged", Unchanged.String())
}
