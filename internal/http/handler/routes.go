package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"empdir/internal/display"
	"empdir/internal/model"
	"empdir/internal/service"
	"empdir/internal/view"
)

// NotFoundBody is the literal body returned when a lookup misses.
const NotFoundBody = "Employee not found"

// RegisterRoutes attaches the directory pages and probes to the provided Fiber app.
// d is computed once at startup and shared by every page.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.EmployeeService, d display.Config) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	pages := []struct {
		path    string
		handler fiber.Handler
	}{
		{"/", Home(d)},
		{"/about", About(d)},
		{"/getemp", GetEmployeeForm(d)},
	}
	for _, p := range pages {
		app.Get(p.path, p.handler)
		app.Post(p.path, p.handler)
	}

	app.Post("/addemp", AddEmployee(svc, d))
	app.Post("/fetchdata", FetchEmployee(svc, d))
}

func render(c *fiber.Ctx, page templ.Component) error {
	c.Type("html", "utf-8")
	return page.Render(c.UserContext(), c.Response().BodyWriter())
}

// HealthCheck pings the store.
//
// @Summary  Readiness probe
// @Produce  json
// @Success  200 {object} map[string]string
// @Failure  503 {object} errorPayload
// @Router   /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200 while the process is up.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// Home renders the add-employee form.
//
// @Summary  Add-employee form
// @Produce  html
// @Success  200 {string} string "HTML page"
// @Router   / [get]
// @Router   / [post]
func Home(d display.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return render(c, view.AddEmployee(d))
	}
}

// About renders the informational page.
//
// @Summary  About page
// @Produce  html
// @Success  200 {string} string "HTML page"
// @Router   /about [get]
// @Router   /about [post]
func About(d display.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return render(c, view.About(d))
	}
}

// GetEmployeeForm renders the lookup form.
//
// @Summary  Lookup form
// @Produce  html
// @Success  200 {string} string "HTML page"
// @Router   /getemp [get]
// @Router   /getemp [post]
func GetEmployeeForm(d display.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return render(c, view.GetEmployee(d))
	}
}

// AddEmployee stores a submitted employee and confirms it.
//
// @Summary  Add an employee
// @Accept   x-www-form-urlencoded
// @Produce  html
// @Param    emp_id        formData string true "Employee ID"
// @Param    first_name    formData string true "First name"
// @Param    last_name     formData string true "Last name"
// @Param    primary_skill formData string true "Primary skill"
// @Param    location      formData string true "Location"
// @Success  200 {string} string "confirmation page"
// @Failure  400 {object} errorPayload
// @Failure  500 {object} errorPayload
// @Router   /addemp [post]
func AddEmployee(svc service.EmployeeService, d display.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		values, err := requiredFields(c,
			view.FieldEmpID, view.FieldFirstName, view.FieldLastName, view.FieldPrimarySkill, view.FieldLocation)
		if err != nil {
			return respondError(c, err)
		}
		annotate(c, values[0])

		emp, err := svc.Add(c.UserContext(), model.Employee{
			EmpID:        values[0],
			FirstName:    values[1],
			LastName:     values[2],
			PrimarySkill: values[3],
			Location:     values[4],
		})
		if err != nil {
			return respondError(c, err)
		}
		return render(c, view.AddEmployeeResult(d, emp.FullName()))
	}
}

// FetchEmployee looks up an employee by emp_id.
//
// @Summary  Look up an employee
// @Accept   x-www-form-urlencoded
// @Produce  html
// @Param    emp_id formData string true "Employee ID"
// @Success  200 {string} string "employee page"
// @Failure  400 {object} errorPayload
// @Failure  404 {string} string "Employee not found"
// @Failure  500 {object} errorPayload
// @Router   /fetchdata [post]
func FetchEmployee(svc service.EmployeeService, d display.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		values, err := requiredFields(c, view.FieldEmpID)
		if err != nil {
			return respondError(c, err)
		}
		annotate(c, values[0])

		emp, err := svc.Get(c.UserContext(), values[0])
		if err != nil {
			return respondError(c, err)
		}
		return render(c, view.EmployeeDetail(d, *emp))
	}
}

func annotate(c *fiber.Ctx, empID string) {
	trace.SpanFromContext(c.UserContext()).SetAttributes(attribute.String("employee.id", empID))
}
