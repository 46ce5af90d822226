package view

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"empdir/internal/display"
	"empdir/internal/model"
)

var testDisplay = display.Config{Color: display.Lime, Group: "Team <Rocket>", Slogan: "Never Give Up!!"}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestPagesCarryDisplay(t *testing.T) {
	pages := map[string]templ.Component{
		"add":    AddEmployee(testDisplay),
		"about":  About(testDisplay),
		"added":  AddEmployeeResult(testDisplay, "Ada Lovelace"),
		"get":    GetEmployee(testDisplay),
		"detail": EmployeeDetail(testDisplay, model.Employee{EmpID: "100"}),
	}

	for name, page := range pages {
		t.Run(name, func(t *testing.T) {
			got := render(t, page)
			assert.True(t, strings.HasPrefix(got, "<!doctype html>"))
			assert.Contains(t, got, "background-color: #C1FF9C;")
			assert.Contains(t, got, `<h1 class="group">Team &lt;Rocket&gt;</h1>`)
			assert.Contains(t, got, `<p class="slogan">Never Give Up!!</p>`)
			assert.NotContains(t, got, "background-image")
		})
	}
}

func TestLayoutBackground(t *testing.T) {
	d := testDisplay
	d.BackgroundURL = "/static/bg.jpg"

	got := render(t, About(d))
	assert.Contains(t, got, "background-color: #C1FF9C; background-image: url(/static/bg.jpg); background-size: cover;")
}

func TestAddEmployeeForm(t *testing.T) {
	got := render(t, AddEmployee(testDisplay))

	assert.Contains(t, got, `<form action="/addemp" method="POST">`)
	for _, name := range []string{FieldEmpID, FieldFirstName, FieldLastName, FieldPrimarySkill, FieldLocation} {
		assert.Contains(t, got, `name="`+name+`"`)
	}
}

func TestGetEmployeeForm(t *testing.T) {
	got := render(t, GetEmployee(testDisplay))

	assert.Contains(t, got, `<form action="/fetchdata" method="POST">`)
	assert.Contains(t, got, `name="emp_id"`)
	assert.NotContains(t, got, `name="first_name"`)
}

func TestAddEmployeeResult(t *testing.T) {
	got := render(t, AddEmployeeResult(testDisplay, "Ada <b>Lovelace</b>"))
	assert.Contains(t, got, "<strong>Ada &lt;b&gt;Lovelace&lt;/b&gt;</strong>")
}

func TestEmployeeDetail(t *testing.T) {
	got := render(t, EmployeeDetail(testDisplay, model.Employee{
		EmpID:        "100",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		PrimarySkill: "Math",
		Location:     "London",
	}))

	assert.Contains(t, got, `<td id="emp_id">100</td>`)
	assert.Contains(t, got, `<td id="first_name">Ada</td>`)
	assert.Contains(t, got, `<td id="last_name">Lovelace</td>`)
	assert.Contains(t, got, `<td id="primary_skill">Math</td>`)
	assert.Contains(t, got, `<td id="location">London</td>`)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("client gone") }

func TestRenderPropagatesWriteError(t *testing.T) {
	err := About(testDisplay).Render(context.Background(), brokenWriter{})
	assert.EqualError(t, err, "client gone")

	err = Layout(testDisplay, "x", templ.ComponentFunc(func(context.Context, io.Writer) error {
		return errors.New("body failed")
	})).Render(context.Background(), io.Discard)
	assert.EqualError(t, err, "body failed")
}
