package entity

// Client proveedor o cliente dueño de productos. Solo lectura.
type Client struct {
	ID          string `db:"id"`
	CompanyName string `db:"company_name"`
}
