package entity

// Department agrupa empleados dentro del schema de un tenant.
type Department struct {
	ID          string
	Name        string
	Description string
}

// Position cargo dentro de un departamento.
type Position struct {
	ID           string
	Name         string
	DepartmentID *string
	Description  string
}
