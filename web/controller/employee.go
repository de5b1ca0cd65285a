package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"staff-ui/logger"
	"staff-ui/web/service"
	"staff-ui/web/session"

	"github.com/gin-gonic/gin"
)

// EmployeeController handles the employee record list and the add, edit
// and delete operations.
type EmployeeController struct {
	employeeService *service.EmployeeService
}

// NewEmployeeController creates a new EmployeeController and registers its
// routes on the guarded group.
func NewEmployeeController(g *gin.RouterGroup, employeeService *service.EmployeeService) *EmployeeController {
	a := &EmployeeController{employeeService: employeeService}
	g.GET("/", a.index)
	g.GET("/add", a.addPage)
	g.POST("/add", a.add)
	g.GET("/edit/:id", a.editPage)
	g.POST("/edit/:id", a.edit)
	g.POST("/delete/:id", a.delete)
	return a
}

// index lists all employee records.
func (a *EmployeeController) index(c *gin.Context) {
	employees, err := a.employeeService.GetAll()
	if err != nil {
		logger.Error("list employees failed:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	html(c, "index.html", "Employees", gin.H{
		"employees": employees,
	})
}

func (a *EmployeeController) addPage(c *gin.Context) {
	html(c, "add_employee.html", "Add Employee", nil)
}

// add creates a new employee record. Validation failures flash a
// field-scoped message and return to the form; nothing is stored.
func (a *EmployeeController) add(c *gin.Context) {
	var form service.EmployeeForm
	if err := c.ShouldBind(&form); err != nil {
		session.AddFlash(c, "danger", "Error: invalid form data.")
		c.Redirect(http.StatusFound, "/add")
		return
	}

	employee, err := a.employeeService.Add(&form)
	if err != nil {
		session.AddFlash(c, "danger", validationMessage(err, false))
		c.Redirect(http.StatusFound, "/add")
		return
	}

	session.AddFlash(c, "success", fmt.Sprintf("Employee %s added successfully!", employee.Name))
	c.Redirect(http.StatusFound, "/")
}

func (a *EmployeeController) editPage(c *gin.Context) {
	id, ok := employeeId(c)
	if !ok {
		return
	}
	employee, err := a.employeeService.Get(id)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	html(c, "update_employee.html", "Edit Employee", gin.H{
		"employee": employee,
	})
}

// edit rewrites all fields of an existing record. A record may keep its
// own email; any other holder of the email fails the update.
func (a *EmployeeController) edit(c *gin.Context) {
	id, ok := employeeId(c)
	if !ok {
		return
	}

	var form service.EmployeeForm
	if err := c.ShouldBind(&form); err != nil {
		session.AddFlash(c, "danger", "Error: invalid form data.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/edit/%d", id))
		return
	}

	employee, err := a.employeeService.Update(id, &form)
	if errors.Is(err, service.ErrEmployeeNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	} else if err != nil {
		session.AddFlash(c, "danger", validationMessage(err, true))
		c.Redirect(http.StatusFound, fmt.Sprintf("/edit/%d", id))
		return
	}

	session.AddFlash(c, "success", fmt.Sprintf("Employee %s updated successfully!", employee.Name))
	c.Redirect(http.StatusFound, "/")
}

// delete removes a record; deleting a nonexistent id is a 404.
func (a *EmployeeController) delete(c *gin.Context) {
	id, ok := employeeId(c)
	if !ok {
		return
	}

	employee, err := a.employeeService.Delete(id)
	if errors.Is(err, service.ErrEmployeeNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	} else if err != nil {
		logger.Error("delete employee failed:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	session.AddFlash(c, "success", fmt.Sprintf("Employee %s deleted successfully!", employee.Name))
	c.Redirect(http.StatusFound, "/")
}

func employeeId(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// validationMessage maps a validation error to the user-facing flash text.
func validationMessage(err error, updating bool) string {
	switch {
	case errors.Is(err, service.ErrMissingField):
		return "Error: Name and Email fields are required."
	case errors.Is(err, service.ErrInvalidNumber):
		return "Error: Salary must be a valid number."
	case errors.Is(err, service.ErrDuplicateEmail):
		if updating {
			return "Error: This email address is already registered to another employee."
		}
		return "Error: This email address is already registered."
	default:
		logger.Error("employee validation failed:", err)
		return "Error: could not save the employee record."
	}
}
