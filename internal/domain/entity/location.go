package entity

// Location representa una bodega, hospital u otro sitio que mantiene stock.
type Location struct {
	ID           string `db:"id"`
	HospitalName string `db:"hospital_name"`
}
