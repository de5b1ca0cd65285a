package service

import (
	"errors"
	"os"
	"testing"

	"staff-ui/database"
	"staff-ui/database/model"
	"staff-ui/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setup(t *testing.T) *gorm.DB {
	t.Helper()

	os.Setenv("STAFFUI_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.DEBUG)

	dbPath := "test.db"
	os.Remove(dbPath)
	db, err := database.InitDB(dbPath)
	assert.NoError(t, err)
	t.Cleanup(func() {
		database.CloseDB(db)
		os.Remove(dbPath)
	})
	return db
}

func countEmployees(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	err := db.Model(model.Employee{}).Count(&count).Error
	assert.NoError(t, err)
	return count
}

func TestEmployeeAddAndList(t *testing.T) {
	db := setup(t)
	service := NewEmployeeService(db)

	employee, err := service.Add(&EmployeeForm{
		Name:       "Ann",
		Position:   "Engineer",
		Department: "R&D",
		Email:      "ann@x.com",
		Salary:     "50000",
	})
	assert.NoError(t, err)
	assert.NotZero(t, employee.Id)
	assert.Equal(t, 50000.0, employee.Salary)

	employees, err := service.GetAll()
	assert.NoError(t, err)
	assert.Len(t, employees, 1)
	assert.Equal(t, "ann@x.com", employees[0].Email)
}

func TestEmployeeAddValidation(t *testing.T) {
	db := setup(t)
	service := NewEmployeeService(db)

	tests := []struct {
		name string
		form EmployeeForm
		want error
	}{
		{
			name: "missing name",
			form: EmployeeForm{Email: "a@x.com"},
			want: ErrMissingField,
		},
		{
			name: "whitespace name",
			form: EmployeeForm{Name: "   ", Email: "a@x.com"},
			want: ErrMissingField,
		},
		{
			name: "missing email",
			form: EmployeeForm{Name: "Ann"},
			want: ErrMissingField,
		},
		{
			name: "bad salary",
			form: EmployeeForm{Name: "Ann", Email: "a@x.com", Salary: "abc"},
			want: ErrInvalidNumber,
		},
		{
			name: "infinite salary",
			form: EmployeeForm{Name: "Ann", Email: "a@x.com", Salary: "Inf"},
			want: ErrInvalidNumber,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Add(&tc.form)
			assert.ErrorIs(t, err, tc.want)

			var fieldErr *FieldError
			assert.True(t, errors.As(err, &fieldErr))
			assert.NotEmpty(t, fieldErr.Field)
		})
	}

	// nothing was stored by the failed attempts
	assert.EqualValues(t, 0, countEmployees(t, db))
}

func TestEmployeeDuplicateEmail(t *testing.T) {
	db := setup(t)
	service := NewEmployeeService(db)

	ann, err := service.Add(&EmployeeForm{Name: "Ann", Position: "Eng", Email: "ann@x.com"})
	assert.NoError(t, err)

	_, err = service.Add(&EmployeeForm{Name: "Bob", Position: "Eng", Email: "ann@x.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.EqualValues(t, 1, countEmployees(t, db))

	// the surviving record is untouched
	got, err := service.Get(ann.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, "ann@x.com", got.Email)
}

func TestEmployeeUpdate(t *testing.T) {
	db := setup(t)
	service := NewEmployeeService(db)

	ann, err := service.Add(&EmployeeForm{Name: "Ann", Position: "Eng", Email: "ann@x.com"})
	assert.NoError(t, err)
	bob, err := service.Add(&EmployeeForm{Name: "Bob", Position: "Eng", Email: "bob@x.com"})
	assert.NoError(t, err)

	// keeping your own email is not a duplicate
	updated, err := service.Update(ann.Id, &EmployeeForm{
		Name:     "Ann",
		Position: "Lead",
		Email:    "ann@x.com",
		Salary:   "1234.5",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Lead", updated.Position)
	assert.Equal(t, 1234.5, updated.Salary)

	// taking someone else's email is
	_, err = service.Update(ann.Id, &EmployeeForm{Name: "Ann", Email: bob.Email})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// the failed update changed nothing
	got, err := service.Get(ann.Id)
	assert.NoError(t, err)
	assert.Equal(t, "ann@x.com", got.Email)
	assert.Equal(t, "Lead", got.Position)

	// unknown id
	_, err = service.Update(9999, &EmployeeForm{Name: "X", Email: "x@x.com"})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestEmployeeDelete(t *testing.T) {
	db := setup(t)
	service := NewEmployeeService(db)

	ann, _ := service.Add(&EmployeeForm{Name: "Ann", Position: "Eng", Email: "ann@x.com"})
	bob, _ := service.Add(&EmployeeForm{Name: "Bob", Position: "Eng", Email: "bob@x.com"})

	_, err := service.Delete(9999)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.EqualValues(t, 2, countEmployees(t, db))

	removed, err := service.Delete(ann.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Ann", removed.Name)

	employees, err := service.GetAll()
	assert.NoError(t, err)
	assert.Len(t, employees, 1)
	assert.Equal(t, bob.Id, employees[0].Id)
}

func TestParseSalary(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{input: "", want: 0},
		{input: "   ", want: 0},
		{input: "1234.5", want: 1234.5},
		{input: "50000", want: 50000},
		{input: "abc", wantErr: true},
		{input: "12,5", wantErr: true},
		{input: "NaN", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := parseSalary(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNumber)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

// TestTranslateConstraint exercises the store-level backstop: a write that
// slips past the validator pre-check still fails with the same
// DuplicateEmail error once the unique index rejects it.
func TestTranslateConstraint(t *testing.T) {
	db := setup(t)
	service := NewEmployeeService(db)

	_, err := service.Add(&EmployeeForm{Name: "Ann", Position: "Eng", Email: "ann@x.com"})
	assert.NoError(t, err)

	// write directly, bypassing the validator, as a racing writer would
	err = db.Create(&model.Employee{Name: "Bob", Position: "Eng", Email: "ann@x.com"}).Error
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
	assert.ErrorIs(t, translateConstraint(err), ErrDuplicateEmail)

	var fieldErr *FieldError
	assert.True(t, errors.As(translateConstraint(err), &fieldErr))
	assert.Equal(t, "email", fieldErr.Field)

	// unrelated errors pass through untouched
	other := errors.New("disk I/O error")
	assert.Equal(t, other, translateConstraint(other))
	assert.NoError(t, translateConstraint(nil))

	// only Ann's row made it in
	assert.EqualValues(t, 1, countEmployees(t, db))
}

func TestEmployeeLifecycleScenario(t *testing.T) {
	db := setup(t)
	service := NewEmployeeService(db)

	ann, err := service.Add(&EmployeeForm{
		Name: "Ann", Position: "Eng", Department: "R&D",
		Email: "ann@x.com", Salary: "50000",
	})
	assert.NoError(t, err)

	employees, _ := service.GetAll()
	assert.Len(t, employees, 1)
	assert.Equal(t, "Ann", employees[0].Name)

	_, err = service.Add(&EmployeeForm{
		Name: "Bob", Position: "Eng", Department: "R&D",
		Email: "ann@x.com", Salary: "60000",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	employees, _ = service.GetAll()
	assert.Len(t, employees, 1)
	assert.Equal(t, "Ann", employees[0].Name)

	_, err = service.Update(ann.Id, &EmployeeForm{
		Name: "Ann", Position: "Eng", Department: "R&D",
		Email: "ann2@x.com", Salary: "50000",
	})
	assert.NoError(t, err)

	_, err = service.Delete(ann.Id)
	assert.NoError(t, err)

	employees, _ = service.GetAll()
	assert.Len(t, employees, 0)
}
