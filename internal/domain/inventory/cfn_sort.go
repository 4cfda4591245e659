package inventory

import (
	"cmp"
	"regexp"
	"sort"
	"strconv"
)

var cfnPattern = regexp.MustCompile(`^([A-Za-z]+)(\d+)`)

// cfnParts descompone un CFN en prefijo de letras y cuerpo numérico.
// Con cuerpos de 4 o más dígitos, los dos últimos forman el grupo "second" (sub-medida de la
// familia) y el resto el grupo "first". Ej.: DHC2508 → {DHC, 25, 8}.
type cfnParts struct {
	prefix string
	first  int
	second int
}

func parseCFN(code string) cfnParts {
	m := cfnPattern.FindStringSubmatch(code)
	if m == nil {
		return cfnParts{prefix: code}
	}
	body := m[2]
	if len(body) < 4 {
		return cfnParts{prefix: m[1], first: atoi(body)}
	}
	return cfnParts{
		prefix: m[1],
		first:  atoi(body[:len(body)-2]),
		second: atoi(body[len(body)-2:]),
	}
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		// cuerpos más largos que int64
		return 0
	}
	return n
}

// CompareCFN ordena dos códigos por prefijo, luego sub-medida (dos últimos dígitos) y luego
// número principal. El sufijo va antes que el número principal a propósito.
func CompareCFN(a, b string) int {
	pa, pb := parseCFN(a), parseCFN(b)
	return cmp.Or(
		cmp.Compare(pa.prefix, pb.prefix),
		cmp.Compare(pa.second, pb.second),
		cmp.Compare(pa.first, pb.first),
	)
}

// CompareCFNNumeric compara filas de inventario: CFN (ver CompareCFN), lote y vencimiento.
func CompareCFNNumeric(a, b InventoryItem) int {
	return cmp.Or(
		CompareCFN(a.CFN, b.CFN),
		cmp.Compare(a.LotNumber, b.LotNumber),
		cmp.Compare(a.UBDDate, b.UBDDate),
	)
}

// SortByCFNNumeric ordena en sitio con CompareCFNNumeric.
func SortByCFNNumeric(items []InventoryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return CompareCFNNumeric(items[i], items[j]) < 0
	})
}
