package model

// Movimiento is one line of a balanced entry sent to the accounting-entries API.
type Movimiento struct {
	Cuenta string  `json:"cuenta"`
	Debe   float64 `json:"debe"`
	Haber  float64 `json:"haber"`
}

type EntradaContable struct {
	Fecha       string       `json:"fecha"`
	Descripcion string       `json:"descripcion"`
	Movimientos []Movimiento `json:"movimientos"`
}

// IsBalanced reports whether debits and credits add up to the same amount.
func (e EntradaContable) IsBalanced() bool {
	var debe, haber float64
	for _, m := range e.Movimientos {
		debe += m.Debe
		haber += m.Haber
	}
	return debe == haber
}

type FilaCxC struct {
	IDTransaccion    interface{} `json:"idTransaccion"`
	Descripcion      string      `json:"descripcion"`
	FechaTransaccion string      `json:"fechaTransaccion"`
	Monto            float64     `json:"monto"`
}

type EntradaCreada struct {
	IDAsiento *string                `json:"idAsiento"`
	Raw       map[string]interface{} `json:"raw"`
}
