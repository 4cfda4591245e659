package entity

// Product es un artículo del catálogo de insumos médicos. Solo se consulta, nunca se modifica aquí.
// ClientID referencia al proveedor dueño del producto.
type Product struct {
	ID          string  `db:"id"`
	CFN         *string `db:"cfn"` // código de catálogo visible para el usuario
	UPN         *string `db:"upn"` // identificador único de dispositivo
	Description *string `db:"description"`
	ClientID    string  `db:"client_id"`
}

// CFNCode devuelve el CFN o "" si el producto no tiene.
func (p Product) CFNCode() string {
	return deref(p.CFN)
}

// DescriptionText devuelve la descripción o "".
func (p Product) DescriptionText() string {
	return deref(p.Description)
}
