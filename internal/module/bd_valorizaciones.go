package module

// BDValorizaciones tracks contractor valuations and their approval state.
var BDValorizaciones = Config{
	ID:          "bd_valorizaciones",
	Name:        "BD Valorizaciones",
	Subtitle:    "Aprobación de valorizaciones",
	Description: "Valorizaciones presentadas por contratistas con su estado de aprobación.",
	Icon:        "📊",

	RPCFunction:          "buscar_valorizaciones_prod",
	Schema:               "cgoii-data-prod",
	TableName:            "BD_Valorizaciones_Master",
	FallbackSearchFields: []string{"contratista", "ruc", "proyecto", "nro_valorizacion"},

	Columns: []Column{
		{Field: "id_valorizacion", HeaderName: "ID", MinWidth: 80},
		{Field: "aprobado", HeaderName: "Aprobado", MinWidth: 100},
		{Field: "proyecto", HeaderName: "Proyecto", MinWidth: 140},
		{Field: "pqt_colegio", HeaderName: "PQT Colegio", MinWidth: 110},
		{Field: "contratista", HeaderName: "Contratista", MinWidth: 200},
		{Field: "ruc", HeaderName: "RUC", MinWidth: 120},
		{Field: "oc", HeaderName: "OC", MinWidth: 100},
		{Field: "nro_valorizacion", HeaderName: "Nro. Valorización", MinWidth: 130},
		{Field: "periodo", HeaderName: "Periodo", MinWidth: 90},
		{Field: "fecha_presentacion", HeaderName: "Fecha Presentación", MinWidth: 140},
		{Field: "fecha_aprobacion", HeaderName: "Fecha Aprobación", MinWidth: 130},
		{Field: "moneda", HeaderName: "Moneda", MinWidth: 80},
		{Field: "monto_bruto", HeaderName: "Monto Bruto", MinWidth: 120},
		{Field: "igv", HeaderName: "IGV", MinWidth: 100},
		{Field: "retencion", HeaderName: "Retención", MinWidth: 110},
		{Field: "fondo_garantia", HeaderName: "Fondo Garantía", MinWidth: 120},
		{Field: "monto_neto", HeaderName: "Monto Neto", MinWidth: 120},
		{Field: "avance_porcentaje", HeaderName: "% Avance", MinWidth: 90},
		{Field: "fee_no_valorizable", HeaderName: "Fee No Valorizable", MinWidth: 140},
		{Field: "responsable", HeaderName: "Responsable", MinWidth: 130},
		{Field: "comentarios_procura", HeaderName: "Comentarios Procura", MinWidth: 180},
		{Field: "observaciones", HeaderName: "Observaciones", MinWidth: 200},
	},
	DateFields:   NewFieldSet("fecha_presentacion", "fecha_aprobacion"),
	AmountFields: NewFieldSet("monto_bruto", "igv", "retencion", "fondo_garantia", "monto_neto"),
	StatusField:  "aprobado",
	PinnedField:  "id_valorizacion",

	RecommendedColumns: NewFieldSet(
		"id_valorizacion", "aprobado", "proyecto", "contratista", "ruc", "nro_valorizacion",
		"periodo", "fecha_presentacion", "moneda", "monto_neto", "observaciones",
	),
	LocalStorageKey: "bd-valorizaciones-column-visibility",

	SumField:          "monto_neto",
	SumLabel:          "Suma Monto Neto",
	SearchPlaceholder: "Buscar por contratista, RUC, proyecto o nro. de valorización...",
}
