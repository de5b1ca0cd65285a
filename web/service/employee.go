package service

import (
	"math"
	"strconv"
	"strings"

	"staff-ui/database/model"

	"gorm.io/gorm"
)

// EmployeeForm is the typed shape of a submitted add/edit form. Salary is
// kept as raw text so the validator owns the numeric conversion.
type EmployeeForm struct {
	Name       string `json:"name" form:"name"`
	Position   string `json:"position" form:"position"`
	Department string `json:"department" form:"department"`
	Email      string `json:"email" form:"email"`
	Salary     string `json:"salary" form:"salary"`
}

// EmployeeService is the employee record store and its validator.
type EmployeeService struct {
	db *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

func (s *EmployeeService) GetAll() ([]model.Employee, error) {
	var employees []model.Employee
	err := s.db.Model(model.Employee{}).
		Order("id asc").
		Find(&employees).
		Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *EmployeeService) Get(id int) (*model.Employee, error) {
	employee := &model.Employee{}
	err := s.db.Model(model.Employee{}).
		Where("id = ?", id).
		First(employee).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrEmployeeNotFound
	} else if err != nil {
		return nil, err
	}
	return employee, nil
}

// Add validates the form and inserts a new employee with a fresh id.
// Nothing is written when validation fails.
func (s *EmployeeService) Add(form *EmployeeForm) (*model.Employee, error) {
	employee, err := s.validate(form, 0)
	if err != nil {
		return nil, err
	}

	if err := s.db.Create(employee).Error; err != nil {
		return nil, translateConstraint(err)
	}
	return employee, nil
}

// Update validates the form against every employee except id itself, then
// rewrites all fields of that record. Returns ErrEmployeeNotFound when the
// id has no row; nothing is written when validation fails.
func (s *EmployeeService) Update(id int, form *EmployeeForm) (*model.Employee, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	employee, err := s.validate(form, id)
	if err != nil {
		return nil, err
	}
	employee.Id = id

	if err := s.db.Save(employee).Error; err != nil {
		return nil, translateConstraint(err)
	}
	return employee, nil
}

// Delete removes exactly the employee with the given id and returns the
// removed record.
func (s *EmployeeService) Delete(id int) (*model.Employee, error) {
	employee, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(&model.Employee{}, id).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

// validate applies the record rules shared by Add and Update. excludeId is
// the id whose email is allowed to match (0 on create, so no row is
// excluded since ids start at 1).
func (s *EmployeeService) validate(form *EmployeeForm, excludeId int) (*model.Employee, error) {
	name := strings.TrimSpace(form.Name)
	email := strings.TrimSpace(form.Email)

	if name == "" {
		return nil, missingField("name")
	}
	if email == "" {
		return nil, missingField("email")
	}

	salary, err := parseSalary(form.Salary)
	if err != nil {
		return nil, err
	}

	taken, err := s.emailTaken(email, excludeId)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, duplicateEmail()
	}

	return &model.Employee{
		Name:       name,
		Position:   form.Position,
		Department: form.Department,
		Email:      email,
		Salary:     salary,
	}, nil
}

func (s *EmployeeService) emailTaken(email string, excludeId int) (bool, error) {
	var count int64
	err := s.db.Model(model.Employee{}).
		Where("email = ? AND id <> ?", email, excludeId).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// parseSalary converts the raw salary text. Empty input means no salary
// was entered and defaults to 0.
func parseSalary(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}
	salary, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsInf(salary, 0) || math.IsNaN(salary) {
		return 0, invalidNumber("salary")
	}
	return salary, nil
}

// translateConstraint maps a store-level unique violation on the email
// column to the same error the validator produces, so racing writers see
// a consistent failure.
func translateConstraint(err error) error {
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return duplicateEmail()
	}
	return err
}
